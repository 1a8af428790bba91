package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const tipColumns = `id, partner_id, title, category, content, target_audience, priority, estimated_impact,
	tags, status, views_count, likes_count, created_at, updated_at`

const tipSelect = `
	SELECT t.id, t.partner_id, t.title, t.category, t.content, t.target_audience, t.priority,
		t.estimated_impact, t.tags, t.status, t.views_count, t.likes_count, t.created_at, t.updated_at,
		p.organization_name AS partner_name
	FROM tips t
	LEFT JOIN partners p ON t.partner_id = p.id`

const tipNotFound = "Tip not found"

type TipRepository interface {
	List(ctx context.Context, f models.TipFilter) ([]models.Tip, error)
	// GetByID returns the tip as stored, then counts the view.
	GetByID(ctx context.Context, id string) (*models.Tip, error)
	Create(ctx context.Context, in models.CreateTipInput) (*models.Tip, error)
	Update(ctx context.Context, id string, in models.UpdateTipInput) (*models.Tip, error)
	Like(ctx context.Context, id string) (int, error)
	Delete(ctx context.Context, id string) error
}

type tipRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTipRepository(db *sqlx.DB, logger *zap.Logger) TipRepository {
	return &tipRepository{db: db, logger: logger}
}

func (r *tipRepository) List(ctx context.Context, f models.TipFilter) ([]models.Tip, error) {
	query, args := NewFilter().
		Eq("t.category", f.Category).
		Eq("t.status", f.Status).
		Eq("t.partner_id", f.PartnerID).
		OrderBy("t.created_at DESC").
		Paginate(f.Page).
		Build(tipSelect)

	tips := []models.Tip{}
	if err := r.db.SelectContext(ctx, &tips, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list tips", err)
		return nil, classify(err, tipNotFound)
	}
	return tips, nil
}

func (r *tipRepository) GetByID(ctx context.Context, id string) (*models.Tip, error) {
	var tip models.Tip
	if err := r.db.GetContext(ctx, &tip, r.db.Rebind(tipSelect+" WHERE t.id = ?"), id); err != nil {
		return nil, classify(err, tipNotFound)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind("UPDATE tips SET views_count = views_count + 1 WHERE id = ?"), id); err != nil {
		logQueryError(r.logger, "Failed to increment tip views", err, zap.String("id", id))
		return nil, classify(err, tipNotFound)
	}
	return &tip, nil
}

func (r *tipRepository) Create(ctx context.Context, in models.CreateTipInput) (*models.Tip, error) {
	ts := now()
	query := r.db.Rebind(`
		INSERT INTO tips (id, partner_id, title, category, content, target_audience, priority,
			estimated_impact, tags, status, views_count, likes_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?)
		RETURNING ` + tipColumns)

	var tip models.Tip
	err := r.db.GetContext(ctx, &tip, query,
		uuid.NewString(),
		blankToNil(in.PartnerID),
		in.Title,
		in.Category,
		in.Content,
		blankToNil(in.TargetAudience),
		blankToNil(in.Priority),
		blankToNil(in.EstimatedImpact),
		in.Tags,
		"draft",
		ts, ts,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create tip", err, zap.String("title", in.Title))
		return nil, classify(err, tipNotFound)
	}
	return &tip, nil
}

func (r *tipRepository) Update(ctx context.Context, id string, in models.UpdateTipInput) (*models.Tip, error) {
	query := r.db.Rebind(`
		UPDATE tips
		SET title = COALESCE(?, title),
			category = COALESCE(?, category),
			content = COALESCE(?, content),
			target_audience = COALESCE(?, target_audience),
			priority = COALESCE(?, priority),
			estimated_impact = COALESCE(?, estimated_impact),
			tags = COALESCE(?, tags),
			status = COALESCE(?, status),
			updated_at = ?
		WHERE id = ?
		RETURNING ` + tipColumns)

	var tip models.Tip
	err := r.db.GetContext(ctx, &tip, query,
		in.Title,
		in.Category,
		in.Content,
		in.TargetAudience,
		in.Priority,
		in.EstimatedImpact,
		in.Tags,
		in.Status,
		now(),
		id,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to update tip", err, zap.String("id", id))
		return nil, classify(err, tipNotFound)
	}
	return &tip, nil
}

func (r *tipRepository) Like(ctx context.Context, id string) (int, error) {
	return increment(ctx, r.db, "tips", "likes_count", id, tipNotFound)
}

func (r *tipRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "tips", id, tipNotFound)
}

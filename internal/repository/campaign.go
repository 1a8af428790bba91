package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const campaignColumns = `id, partner_id, title, description, campaign_type, target_audience, start_date,
	end_date, platforms, budget, goals, kpis, keywords, status, created_at, updated_at`

const campaignSelect = `
	SELECT c.id, c.partner_id, c.title, c.description, c.campaign_type, c.target_audience, c.start_date,
		c.end_date, c.platforms, c.budget, c.goals, c.kpis, c.keywords, c.status, c.created_at, c.updated_at,
		p.organization_name AS partner_name
	FROM campaigns c
	LEFT JOIN partners p ON c.partner_id = p.id`

const campaignNotFound = "Campaign not found"

type CampaignRepository interface {
	List(ctx context.Context, f models.CampaignFilter) ([]models.Campaign, error)
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	Create(ctx context.Context, in models.CreateCampaignInput) (*models.Campaign, error)
	Update(ctx context.Context, id string, in models.UpdateCampaignInput) (*models.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type campaignRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCampaignRepository(db *sqlx.DB, logger *zap.Logger) CampaignRepository {
	return &campaignRepository{db: db, logger: logger}
}

func (r *campaignRepository) List(ctx context.Context, f models.CampaignFilter) ([]models.Campaign, error) {
	query, args := NewFilter().
		Eq("c.status", f.Status).
		Eq("c.partner_id", f.PartnerID).
		OrderBy("c.created_at DESC").
		Paginate(f.Page).
		Build(campaignSelect)

	campaigns := []models.Campaign{}
	if err := r.db.SelectContext(ctx, &campaigns, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list campaigns", err)
		return nil, classify(err, campaignNotFound)
	}
	return campaigns, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	var c models.Campaign
	if err := r.db.GetContext(ctx, &c, r.db.Rebind(campaignSelect+" WHERE c.id = ?"), id); err != nil {
		return nil, classify(err, campaignNotFound)
	}
	return &c, nil
}

func (r *campaignRepository) Create(ctx context.Context, in models.CreateCampaignInput) (*models.Campaign, error) {
	ts := now()
	query := r.db.Rebind(`
		INSERT INTO campaigns (id, partner_id, title, description, campaign_type, target_audience,
			start_date, end_date, platforms, budget, goals, kpis, keywords, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + campaignColumns)

	var c models.Campaign
	err := r.db.GetContext(ctx, &c, query,
		uuid.NewString(),
		blankToNil(in.PartnerID),
		in.Title,
		in.Description,
		blankToNil(in.CampaignType),
		blankToNil(in.TargetAudience),
		blankToNil(in.StartDate),
		blankToNil(in.EndDate),
		in.Platforms,
		blankToNil(in.Budget),
		blankToNil(in.Goals),
		in.KPIs,
		in.Keywords,
		"draft",
		ts, ts,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create campaign", err, zap.String("title", in.Title))
		return nil, classify(err, campaignNotFound)
	}
	return &c, nil
}

func (r *campaignRepository) Update(ctx context.Context, id string, in models.UpdateCampaignInput) (*models.Campaign, error) {
	query := r.db.Rebind(`
		UPDATE campaigns
		SET title = COALESCE(?, title),
			description = COALESCE(?, description),
			campaign_type = COALESCE(?, campaign_type),
			target_audience = COALESCE(?, target_audience),
			start_date = COALESCE(?, start_date),
			end_date = COALESCE(?, end_date),
			platforms = COALESCE(?, platforms),
			budget = COALESCE(?, budget),
			goals = COALESCE(?, goals),
			kpis = COALESCE(?, kpis),
			keywords = COALESCE(?, keywords),
			status = COALESCE(?, status),
			updated_at = ?
		WHERE id = ?
		RETURNING ` + campaignColumns)

	var c models.Campaign
	err := r.db.GetContext(ctx, &c, query,
		in.Title,
		in.Description,
		in.CampaignType,
		in.TargetAudience,
		in.StartDate,
		in.EndDate,
		in.Platforms,
		in.Budget,
		in.Goals,
		in.KPIs,
		in.Keywords,
		in.Status,
		now(),
		id,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to update campaign", err, zap.String("id", id))
		return nil, classify(err, campaignNotFound)
	}
	return &c, nil
}

func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "campaigns", id, campaignNotFound)
}

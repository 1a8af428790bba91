package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const answerColumns = `id, question_id, session_id, partner_id, answer_text, is_verified, helpful_count,
	created_at, updated_at`

const answerSelect = `
	SELECT a.id, a.question_id, a.session_id, a.partner_id, a.answer_text, a.is_verified, a.helpful_count,
		a.created_at, a.updated_at, p.organization_name AS partner_name
	FROM answers a
	LEFT JOIN partners p ON a.partner_id = p.id`

const answerNotFound = "Answer not found"

type AnswerRepository interface {
	List(ctx context.Context, f models.AnswerFilter) ([]models.Answer, error)
	GetByID(ctx context.Context, id string) (*models.Answer, error)
	// Create inserts the answer and marks its question answered in one transaction.
	// A missing session id is taken from the question.
	Create(ctx context.Context, in models.CreateAnswerInput) (*models.Answer, error)
	UpdateText(ctx context.Context, id, text string) (*models.Answer, error)
	SetVerified(ctx context.Context, id string, verified bool) (*models.Answer, error)
	MarkHelpful(ctx context.Context, id string) (int, error)
	Delete(ctx context.Context, id string) error
}

type answerRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAnswerRepository(db *sqlx.DB, logger *zap.Logger) AnswerRepository {
	return &answerRepository{db: db, logger: logger}
}

func (r *answerRepository) List(ctx context.Context, f models.AnswerFilter) ([]models.Answer, error) {
	query, args := NewFilter().
		Eq("a.question_id", f.QuestionID).
		Eq("a.session_id", f.SessionID).
		OrderBy("a.is_verified DESC, a.helpful_count DESC, a.created_at ASC").
		Paginate(f.Page).
		Build(answerSelect)

	answers := []models.Answer{}
	if err := r.db.SelectContext(ctx, &answers, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list answers", err)
		return nil, classify(err, answerNotFound)
	}
	return answers, nil
}

func (r *answerRepository) GetByID(ctx context.Context, id string) (*models.Answer, error) {
	var a models.Answer
	if err := r.db.GetContext(ctx, &a, r.db.Rebind(answerSelect+" WHERE a.id = ?"), id); err != nil {
		return nil, classify(err, answerNotFound)
	}
	return &a, nil
}

func (r *answerRepository) Create(ctx context.Context, in models.CreateAnswerInput) (*models.Answer, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	sessionID := blankToNil(in.SessionID)
	if sessionID == nil {
		var sid string
		if err := tx.GetContext(ctx, &sid, tx.Rebind("SELECT session_id FROM questions WHERE id = ?"), in.QuestionID); err != nil {
			return nil, classify(err, questionNotFound)
		}
		sessionID = &sid
	}

	ts := now()
	var a models.Answer
	err = tx.GetContext(ctx, &a, tx.Rebind(`
		INSERT INTO answers (id, question_id, session_id, partner_id, answer_text, is_verified, helpful_count,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, FALSE, 0, ?, ?)
		RETURNING `+answerColumns),
		uuid.NewString(), in.QuestionID, sessionID, blankToNil(in.PartnerID), in.AnswerText, ts, ts,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create answer", err, zap.String("question_id", in.QuestionID))
		return nil, classify(err, answerNotFound)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind("UPDATE questions SET status = ?, updated_at = ? WHERE id = ?"),
		"answered", ts, in.QuestionID); err != nil {
		logQueryError(r.logger, "Failed to mark question answered", err, zap.String("question_id", in.QuestionID))
		return nil, classify(err, questionNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit answer: %w", err)
	}
	return &a, nil
}

func (r *answerRepository) UpdateText(ctx context.Context, id, text string) (*models.Answer, error) {
	query := r.db.Rebind(`UPDATE answers SET answer_text = ?, updated_at = ? WHERE id = ? RETURNING ` + answerColumns)

	var a models.Answer
	if err := r.db.GetContext(ctx, &a, query, text, now(), id); err != nil {
		logQueryError(r.logger, "Failed to update answer", err, zap.String("id", id))
		return nil, classify(err, answerNotFound)
	}
	return &a, nil
}

func (r *answerRepository) SetVerified(ctx context.Context, id string, verified bool) (*models.Answer, error) {
	query := r.db.Rebind(`UPDATE answers SET is_verified = ?, updated_at = ? WHERE id = ? RETURNING ` + answerColumns)

	var a models.Answer
	if err := r.db.GetContext(ctx, &a, query, verified, now(), id); err != nil {
		logQueryError(r.logger, "Failed to verify answer", err, zap.String("id", id))
		return nil, classify(err, answerNotFound)
	}
	return &a, nil
}

func (r *answerRepository) MarkHelpful(ctx context.Context, id string) (int, error) {
	return increment(ctx, r.db, "answers", "helpful_count", id, answerNotFound)
}

func (r *answerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "answers", id, answerNotFound)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const analysisColumns = `id, user_id, input_text, analysis_result, risk_level, confidence_score, created_at`

const analysisNotFound = "AI analysis not found"

// AnalysisRepository stores triage results. Analyses are never updated.
type AnalysisRepository interface {
	List(ctx context.Context, f models.AIAnalysisFilter) ([]models.AIAnalysis, error)
	GetByID(ctx context.Context, id string) (*models.AIAnalysis, error)
	Create(ctx context.Context, a *models.AIAnalysis) error
}

type analysisRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAnalysisRepository(db *sqlx.DB, logger *zap.Logger) AnalysisRepository {
	return &analysisRepository{db: db, logger: logger}
}

func (r *analysisRepository) List(ctx context.Context, f models.AIAnalysisFilter) ([]models.AIAnalysis, error) {
	query, args := NewFilter().
		Eq("user_id", f.UserID).
		OrderBy("created_at DESC").
		Paginate(f.Page).
		Build("SELECT " + analysisColumns + " FROM ai_analyses")

	out := []models.AIAnalysis{}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list analyses", err)
		return nil, classify(err, analysisNotFound)
	}
	return out, nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id string) (*models.AIAnalysis, error) {
	var a models.AIAnalysis
	query := r.db.Rebind("SELECT " + analysisColumns + " FROM ai_analyses WHERE id = ?")
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		return nil, classify(err, analysisNotFound)
	}
	return &a, nil
}

// Create assigns the id and timestamp and persists a.
func (r *analysisRepository) Create(ctx context.Context, a *models.AIAnalysis) error {
	a.ID = uuid.NewString()
	a.CreatedAt = now()
	a.UserID = blankToNil(a.UserID)

	query := r.db.Rebind(`
		INSERT INTO ai_analyses (id, user_id, input_text, analysis_result, risk_level, confidence_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.InputText, a.AnalysisResult, a.RiskLevel, a.ConfidenceScore, a.CreatedAt)
	if err != nil {
		logQueryError(r.logger, "Failed to create analysis", err)
		return classify(err, analysisNotFound)
	}
	return nil
}

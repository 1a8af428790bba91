package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const riskColumns = `id, user_id, digital_harm, platform, frequency, safety_feeling, escalating_risk,
	can_block_report, risk_level, created_at`

const riskNotFound = "Risk assessment not found"

type RiskRepository interface {
	List(ctx context.Context, f models.RiskAssessmentFilter) ([]models.RiskAssessment, error)
	GetByID(ctx context.Context, id string) (*models.RiskAssessment, error)
	// Create stores the assessment with its already derived risk level.
	Create(ctx context.Context, in models.CreateRiskAssessmentInput, riskLevel string) (*models.RiskAssessment, error)
}

type riskRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRiskRepository(db *sqlx.DB, logger *zap.Logger) RiskRepository {
	return &riskRepository{db: db, logger: logger}
}

func (r *riskRepository) List(ctx context.Context, f models.RiskAssessmentFilter) ([]models.RiskAssessment, error) {
	query, args := NewFilter().
		Eq("user_id", f.UserID).
		OrderBy("created_at DESC").
		Paginate(f.Page).
		Build("SELECT " + riskColumns + " FROM risk_assessments")

	out := []models.RiskAssessment{}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list risk assessments", err)
		return nil, classify(err, riskNotFound)
	}
	return out, nil
}

func (r *riskRepository) GetByID(ctx context.Context, id string) (*models.RiskAssessment, error) {
	var ra models.RiskAssessment
	query := r.db.Rebind("SELECT " + riskColumns + " FROM risk_assessments WHERE id = ?")
	if err := r.db.GetContext(ctx, &ra, query, id); err != nil {
		return nil, classify(err, riskNotFound)
	}
	return &ra, nil
}

func (r *riskRepository) Create(ctx context.Context, in models.CreateRiskAssessmentInput, riskLevel string) (*models.RiskAssessment, error) {
	query := r.db.Rebind(`
		INSERT INTO risk_assessments (id, user_id, digital_harm, platform, frequency, safety_feeling,
			escalating_risk, can_block_report, risk_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + riskColumns)

	canBlock := in.CanBlockReport != nil && *in.CanBlockReport

	var ra models.RiskAssessment
	err := r.db.GetContext(ctx, &ra, query,
		uuid.NewString(),
		blankToNil(in.UserID),
		blankToNil(in.DigitalHarm),
		blankToNil(in.Platform),
		blankToNil(in.Frequency),
		in.SafetyFeeling,
		blankToNil(in.EscalatingRisk),
		canBlock,
		riskLevel,
		now(),
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create risk assessment", err)
		return nil, classify(err, riskNotFound)
	}
	return &ra, nil
}

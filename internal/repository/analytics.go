package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

// AnalyticsRepository computes dashboard counters on demand.
type AnalyticsRepository interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

type analyticsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAnalyticsRepository(db *sqlx.DB, logger *zap.Logger) AnalyticsRepository {
	return &analyticsRepository{db: db, logger: logger}
}

type levelCount struct {
	RiskLevel string `db:"risk_level"`
	Count     int    `db:"count"`
}

func (r *analyticsRepository) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	d := &models.Dashboard{}

	counters := []struct {
		dest  *int
		query string
		args  []any
	}{
		{&d.Partners, "SELECT COUNT(*) FROM partners", nil},
		{&d.PublishedTips, "SELECT COUNT(*) FROM tips WHERE status = ?", []any{"published"}},
		{&d.ActiveCampaigns, "SELECT COUNT(*) FROM campaigns WHERE status = ?", []any{"active"}},
		{&d.ScheduledSessions, "SELECT COUNT(*) FROM sessions WHERE status = ?", []any{"scheduled"}},
		{&d.PendingQuestions, "SELECT COUNT(*) FROM questions WHERE status = ?", []any{"pending"}},
	}
	for _, c := range counters {
		if err := r.db.GetContext(ctx, c.dest, r.db.Rebind(c.query), c.args...); err != nil {
			logQueryError(r.logger, "Failed to count dashboard metric", err, zap.String("query", c.query))
			return nil, err
		}
	}

	var err error
	if d.AnalysesByRisk, err = r.countByLevel(ctx, "ai_analyses"); err != nil {
		return nil, err
	}
	if d.AssessmentsByRisk, err = r.countByLevel(ctx, "risk_assessments"); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *analyticsRepository) countByLevel(ctx context.Context, table string) (map[string]int, error) {
	var rows []levelCount
	query := "SELECT risk_level, COUNT(*) AS count FROM " + table + " GROUP BY risk_level"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		logQueryError(r.logger, "Failed to count by risk level", err, zap.String("table", table))
		return nil, err
	}

	out := map[string]int{models.RiskLow: 0, models.RiskMedium: 0, models.RiskHigh: 0}
	for _, row := range rows {
		out[row.RiskLevel] = row.Count
	}
	return out, nil
}

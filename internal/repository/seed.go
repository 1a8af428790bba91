package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

// Seed inserts a sample partner with one tip, campaign and session. It does
// nothing when the sample partner already exists.
func Seed(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	var partnerID string
	err = tx.GetContext(ctx, &partnerID, tx.Rebind(`
		INSERT INTO partners (id, organization_name, contact_email, contact_phone, description,
			verification_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (contact_email) DO NOTHING
		RETURNING id`),
		uuid.NewString(),
		"Amani Connect",
		"contact@amaniconnect.org",
		"+1234567890",
		"Verified NGO empowering youth with safety and knowledge",
		"verified",
		ts, ts,
	)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Info("Seed data already present, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed partner: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO tips (id, partner_id, title, category, content, target_audience, priority, tags, status,
			views_count, likes_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?)`),
		uuid.NewString(),
		partnerID,
		"Stay Safe Online: Strong Passwords",
		"Digital Security",
		"Always use strong, unique passwords for each account. A strong password should be at least 12 characters long and include a mix of uppercase, lowercase, numbers, and symbols.",
		"Youth (13-17)",
		"High Impact",
		models.StringList{"password", "security", "online-safety"},
		"published",
		ts, ts,
	)
	if err != nil {
		return fmt.Errorf("failed to seed tip: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO campaigns (id, partner_id, title, description, campaign_type, target_audience, start_date,
			end_date, platforms, kpis, keywords, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		uuid.NewString(),
		partnerID,
		"Anti-Bullying Awareness Week",
		"A comprehensive campaign to raise awareness about bullying prevention and support resources.",
		"Awareness Campaign",
		"Youth (13-17)",
		"2024-01-01",
		"2024-01-07",
		models.StringList{"Social Media", "School Programs"},
		models.StringList{},
		models.StringList{},
		"active",
		ts, ts,
	)
	if err != nil {
		return fmt.Errorf("failed to seed campaign: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO sessions (id, partner_id, title, description, session_type, topic, scheduled_date,
			scheduled_time, facilitator, target_audience, engagement_metrics, resources, tags, status,
			participant_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`),
		uuid.NewString(),
		partnerID,
		"Digital Safety Q&A",
		"Ask questions about staying safe online and protecting your digital identity.",
		"Live Q&A Session",
		"Digital Security",
		"2024-12-20",
		"14:00:00",
		"Dr. Sarah Johnson",
		"Youth (13-17)",
		models.StringList{},
		models.StringList{},
		models.StringList{},
		"scheduled",
		ts, ts,
	)
	if err != nil {
		return fmt.Errorf("failed to seed session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}
	logger.Info("Database seeded successfully", zap.String("partner_id", partnerID))
	return nil
}

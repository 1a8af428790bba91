package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const sessionColumns = `id, partner_id, title, description, session_type, topic, max_participants, duration,
	scheduled_date, scheduled_time, facilitator, target_audience, expected_outcomes, engagement_metrics,
	resources, tags, status, participant_count, created_at, updated_at`

const sessionSelect = `
	SELECT s.id, s.partner_id, s.title, s.description, s.session_type, s.topic, s.max_participants,
		s.duration, s.scheduled_date, s.scheduled_time, s.facilitator, s.target_audience,
		s.expected_outcomes, s.engagement_metrics, s.resources, s.tags, s.status, s.participant_count,
		s.created_at, s.updated_at, p.organization_name AS partner_name
	FROM sessions s
	LEFT JOIN partners p ON s.partner_id = p.id`

const sessionNotFound = "Session not found"

type SessionRepository interface {
	List(ctx context.Context, f models.SessionFilter) ([]models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, in models.CreateSessionInput) (*models.Session, error)
	Update(ctx context.Context, id string, in models.UpdateSessionInput) (*models.Session, error)
	Join(ctx context.Context, id string) (int, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSessionRepository(db *sqlx.DB, logger *zap.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) List(ctx context.Context, f models.SessionFilter) ([]models.Session, error) {
	query, args := NewFilter().
		Eq("s.status", f.Status).
		Eq("s.partner_id", f.PartnerID).
		OrderBy("s.scheduled_date DESC, s.scheduled_time DESC").
		Paginate(f.Page).
		Build(sessionSelect)

	sessions := []models.Session{}
	if err := r.db.SelectContext(ctx, &sessions, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list sessions", err)
		return nil, classify(err, sessionNotFound)
	}
	return sessions, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := r.db.GetContext(ctx, &s, r.db.Rebind(sessionSelect+" WHERE s.id = ?"), id); err != nil {
		return nil, classify(err, sessionNotFound)
	}
	return &s, nil
}

func (r *sessionRepository) Create(ctx context.Context, in models.CreateSessionInput) (*models.Session, error) {
	ts := now()
	query := r.db.Rebind(`
		INSERT INTO sessions (id, partner_id, title, description, session_type, topic, max_participants,
			duration, scheduled_date, scheduled_time, facilitator, target_audience, expected_outcomes,
			engagement_metrics, resources, tags, status, participant_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
		RETURNING ` + sessionColumns)

	var s models.Session
	err := r.db.GetContext(ctx, &s, query,
		uuid.NewString(),
		blankToNil(in.PartnerID),
		in.Title,
		in.Description,
		blankToNil(in.SessionType),
		blankToNil(in.Topic),
		in.MaxParticipants,
		blankToNil(in.Duration),
		blankToNil(in.ScheduledDate),
		blankToNil(in.ScheduledTime),
		blankToNil(in.Facilitator),
		blankToNil(in.TargetAudience),
		blankToNil(in.ExpectedOutcomes),
		in.EngagementMetrics,
		in.Resources,
		in.Tags,
		"scheduled",
		ts, ts,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create session", err, zap.String("title", in.Title))
		return nil, classify(err, sessionNotFound)
	}
	return &s, nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, in models.UpdateSessionInput) (*models.Session, error) {
	query := r.db.Rebind(`
		UPDATE sessions
		SET title = COALESCE(?, title),
			description = COALESCE(?, description),
			session_type = COALESCE(?, session_type),
			topic = COALESCE(?, topic),
			max_participants = COALESCE(?, max_participants),
			duration = COALESCE(?, duration),
			scheduled_date = COALESCE(?, scheduled_date),
			scheduled_time = COALESCE(?, scheduled_time),
			facilitator = COALESCE(?, facilitator),
			target_audience = COALESCE(?, target_audience),
			expected_outcomes = COALESCE(?, expected_outcomes),
			engagement_metrics = COALESCE(?, engagement_metrics),
			resources = COALESCE(?, resources),
			tags = COALESCE(?, tags),
			status = COALESCE(?, status),
			updated_at = ?
		WHERE id = ?
		RETURNING ` + sessionColumns)

	var s models.Session
	err := r.db.GetContext(ctx, &s, query,
		in.Title,
		in.Description,
		in.SessionType,
		in.Topic,
		in.MaxParticipants,
		in.Duration,
		in.ScheduledDate,
		in.ScheduledTime,
		in.Facilitator,
		in.TargetAudience,
		in.ExpectedOutcomes,
		in.EngagementMetrics,
		in.Resources,
		in.Tags,
		in.Status,
		now(),
		id,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to update session", err, zap.String("id", id))
		return nil, classify(err, sessionNotFound)
	}
	return &s, nil
}

func (r *sessionRepository) Join(ctx context.Context, id string) (int, error) {
	return increment(ctx, r.db, "sessions", "participant_count", id, sessionNotFound)
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "sessions", id, sessionNotFound)
}

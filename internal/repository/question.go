package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const questionColumns = `id, session_id, user_id, question_text, status, upvotes, created_at, updated_at`

const questionNotFound = "Question not found"

type QuestionRepository interface {
	List(ctx context.Context, f models.QuestionFilter) ([]models.Question, error)
	// GetByID includes the number of answers posted to the question.
	GetByID(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, in models.CreateQuestionInput) (*models.Question, error)
	Upvote(ctx context.Context, id string) (int, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Question, error)
	Delete(ctx context.Context, id string) error
}

type questionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewQuestionRepository(db *sqlx.DB, logger *zap.Logger) QuestionRepository {
	return &questionRepository{db: db, logger: logger}
}

func (r *questionRepository) List(ctx context.Context, f models.QuestionFilter) ([]models.Question, error) {
	query, args := NewFilter().
		Eq("session_id", f.SessionID).
		Eq("status", f.Status).
		OrderBy("upvotes DESC, created_at DESC").
		Paginate(f.Page).
		Build("SELECT " + questionColumns + " FROM questions")

	questions := []models.Question{}
	if err := r.db.SelectContext(ctx, &questions, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list questions", err)
		return nil, classify(err, questionNotFound)
	}
	return questions, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query := r.db.Rebind(`
		SELECT q.id, q.session_id, q.user_id, q.question_text, q.status, q.upvotes, q.created_at, q.updated_at,
			(SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answer_count
		FROM questions q
		WHERE q.id = ?`)

	var q models.Question
	if err := r.db.GetContext(ctx, &q, query, id); err != nil {
		return nil, classify(err, questionNotFound)
	}
	return &q, nil
}

func (r *questionRepository) Create(ctx context.Context, in models.CreateQuestionInput) (*models.Question, error) {
	ts := now()
	query := r.db.Rebind(`
		INSERT INTO questions (id, session_id, user_id, question_text, status, upvotes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
		RETURNING ` + questionColumns)

	var q models.Question
	err := r.db.GetContext(ctx, &q, query,
		uuid.NewString(), in.SessionID, blankToNil(in.UserID), in.QuestionText, "pending", ts, ts)
	if err != nil {
		logQueryError(r.logger, "Failed to create question", err, zap.String("session_id", in.SessionID))
		return nil, classify(err, questionNotFound)
	}
	return &q, nil
}

func (r *questionRepository) Upvote(ctx context.Context, id string) (int, error) {
	return increment(ctx, r.db, "questions", "upvotes", id, questionNotFound)
}

func (r *questionRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Question, error) {
	query := r.db.Rebind(`UPDATE questions SET status = ?, updated_at = ? WHERE id = ? RETURNING ` + questionColumns)

	var q models.Question
	if err := r.db.GetContext(ctx, &q, query, status, now(), id); err != nil {
		logQueryError(r.logger, "Failed to update question status", err, zap.String("id", id))
		return nil, classify(err, questionNotFound)
	}
	return &q, nil
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "questions", id, questionNotFound)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const quizResultColumns = `id, user_id, quiz_id, quiz_title, score, total_points, correct_answers,
	total_questions, completion_time, answers, created_at`

const quizResultNotFound = "Quiz result not found"

// percentageExpr is portable between postgres and sqlite; NULLIF keeps zero totals out of the average.
const percentageExpr = "CAST(score AS DOUBLE PRECISION) / NULLIF(total_points, 0) * 100"

type QuizRepository interface {
	List(ctx context.Context, f models.QuizResultFilter) ([]models.QuizResult, error)
	GetByID(ctx context.Context, id string) (*models.QuizResult, error)
	Create(ctx context.Context, in models.CreateQuizResultInput) (*models.QuizResult, error)
	// Stats aggregates a user's results; nothing derived is stored.
	Stats(ctx context.Context, userID string) (*models.QuizStats, error)
}

type quizRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewQuizRepository(db *sqlx.DB, logger *zap.Logger) QuizRepository {
	return &quizRepository{db: db, logger: logger}
}

func (r *quizRepository) List(ctx context.Context, f models.QuizResultFilter) ([]models.QuizResult, error) {
	query, args := NewFilter().
		Eq("user_id", f.UserID).
		Eq("quiz_id", f.QuizID).
		OrderBy("created_at DESC").
		Paginate(f.Page).
		Build("SELECT " + quizResultColumns + " FROM quiz_results")

	results := []models.QuizResult{}
	if err := r.db.SelectContext(ctx, &results, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list quiz results", err)
		return nil, classify(err, quizResultNotFound)
	}
	return results, nil
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (*models.QuizResult, error) {
	var res models.QuizResult
	query := r.db.Rebind("SELECT " + quizResultColumns + " FROM quiz_results WHERE id = ?")
	if err := r.db.GetContext(ctx, &res, query, id); err != nil {
		return nil, classify(err, quizResultNotFound)
	}
	return &res, nil
}

func (r *quizRepository) Create(ctx context.Context, in models.CreateQuizResultInput) (*models.QuizResult, error) {
	query := r.db.Rebind(`
		INSERT INTO quiz_results (id, user_id, quiz_id, quiz_title, score, total_points, correct_answers,
			total_questions, completion_time, answers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + quizResultColumns)

	var res models.QuizResult
	err := r.db.GetContext(ctx, &res, query,
		uuid.NewString(),
		blankToNil(in.UserID),
		in.QuizID,
		blankToNil(in.QuizTitle),
		in.Score,
		in.TotalPoints,
		in.CorrectAnswers,
		in.TotalQuestions,
		in.CompletionTime,
		in.Answers,
		now(),
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create quiz result", err, zap.String("quiz_id", in.QuizID))
		return nil, classify(err, quizResultNotFound)
	}
	return &res, nil
}

func (r *quizRepository) Stats(ctx context.Context, userID string) (*models.QuizStats, error) {
	stats := &models.QuizStats{ByQuiz: []models.QuizBreakdown{}}

	overall := r.db.Rebind(`
		SELECT COUNT(*) AS total_quizzes,
			COALESCE(SUM(score), 0) AS total_points,
			COALESCE(SUM(correct_answers), 0) AS total_correct,
			COALESCE(SUM(total_questions), 0) AS total_questions,
			AVG(` + percentageExpr + `) AS average_score_percentage
		FROM quiz_results
		WHERE user_id = ?`)
	if err := r.db.GetContext(ctx, &stats.Overall, overall, userID); err != nil {
		logQueryError(r.logger, "Failed to aggregate quiz stats", err, zap.String("user_id", userID))
		return nil, classify(err, quizResultNotFound)
	}

	breakdown := r.db.Rebind(`
		SELECT quiz_id, quiz_title,
			COUNT(*) AS attempts,
			MAX(score) AS best_score,
			MAX(total_points) AS max_points,
			AVG(` + percentageExpr + `) AS average_percentage
		FROM quiz_results
		WHERE user_id = ?
		GROUP BY quiz_id, quiz_title
		ORDER BY quiz_id`)
	if err := r.db.SelectContext(ctx, &stats.ByQuiz, breakdown, userID); err != nil {
		logQueryError(r.logger, "Failed to aggregate quiz breakdown", err, zap.String("user_id", userID))
		return nil, classify(err, quizResultNotFound)
	}
	return stats, nil
}

package models

import "time"

// QuizResult is one submitted quiz attempt.
type QuizResult struct {
	ID             string    `db:"id" json:"id"`
	UserID         *string   `db:"user_id" json:"user_id"`
	QuizID         string    `db:"quiz_id" json:"quiz_id"`
	QuizTitle      *string   `db:"quiz_title" json:"quiz_title"`
	Score          int       `db:"score" json:"score"`
	TotalPoints    int       `db:"total_points" json:"total_points"`
	CorrectAnswers int       `db:"correct_answers" json:"correct_answers"`
	TotalQuestions int       `db:"total_questions" json:"total_questions"`
	CompletionTime *int      `db:"completion_time" json:"completion_time"`
	Answers        JSONBlob  `db:"answers" json:"answers"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateQuizResultInput struct {
	UserID         *string  `json:"user_id"`
	QuizID         string   `json:"quiz_id" binding:"required"`
	QuizTitle      *string  `json:"quiz_title"`
	Score          *int     `json:"score" binding:"required"`
	TotalPoints    *int     `json:"total_points" binding:"required"`
	CorrectAnswers int      `json:"correct_answers"`
	TotalQuestions int      `json:"total_questions"`
	CompletionTime *int     `json:"completion_time"`
	Answers        JSONBlob `json:"answers"`
}

type QuizResultFilter struct {
	UserID string
	QuizID string
	Page
}

// QuizStats aggregates a user's results at read time.
type QuizStats struct {
	Overall QuizOverall     `json:"overall"`
	ByQuiz  []QuizBreakdown `json:"by_quiz"`
}

type QuizOverall struct {
	TotalQuizzes           int      `db:"total_quizzes" json:"total_quizzes"`
	TotalPoints            int      `db:"total_points" json:"total_points"`
	TotalCorrect           int      `db:"total_correct" json:"total_correct"`
	TotalQuestions         int      `db:"total_questions" json:"total_questions"`
	AverageScorePercentage *float64 `db:"average_score_percentage" json:"average_score_percentage"`
}

type QuizBreakdown struct {
	QuizID            string   `db:"quiz_id" json:"quiz_id"`
	QuizTitle         *string  `db:"quiz_title" json:"quiz_title"`
	Attempts          int      `db:"attempts" json:"attempts"`
	BestScore         int      `db:"best_score" json:"best_score"`
	MaxPoints         int      `db:"max_points" json:"max_points"`
	AveragePercentage *float64 `db:"average_percentage" json:"average_percentage"`
}

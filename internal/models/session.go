package models

import "time"

// Session is a live or recorded education session hosting Q&A.
type Session struct {
	ID                string     `db:"id" json:"id"`
	PartnerID         *string    `db:"partner_id" json:"partner_id"`
	PartnerName       *string    `db:"partner_name" json:"partner_name,omitempty"`
	Title             string     `db:"title" json:"title"`
	Description       string     `db:"description" json:"description"`
	SessionType       *string    `db:"session_type" json:"session_type"`
	Topic             *string    `db:"topic" json:"topic"`
	MaxParticipants   *int       `db:"max_participants" json:"max_participants"`
	Duration          *string    `db:"duration" json:"duration"`
	ScheduledDate     *string    `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime     *string    `db:"scheduled_time" json:"scheduled_time"`
	Facilitator       *string    `db:"facilitator" json:"facilitator"`
	TargetAudience    *string    `db:"target_audience" json:"target_audience"`
	ExpectedOutcomes  *string    `db:"expected_outcomes" json:"expected_outcomes"`
	EngagementMetrics StringList `db:"engagement_metrics" json:"engagement_metrics"`
	Resources         StringList `db:"resources" json:"resources"`
	Tags              StringList `db:"tags" json:"tags"`
	Status            string     `db:"status" json:"status"`
	ParticipantCount  int        `db:"participant_count" json:"participant_count"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateSessionInput struct {
	PartnerID         *string    `json:"partner_id"`
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description" binding:"required"`
	SessionType       *string    `json:"session_type"`
	Topic             *string    `json:"topic"`
	MaxParticipants   *int       `json:"max_participants"`
	Duration          *string    `json:"duration"`
	ScheduledDate     *string    `json:"scheduled_date"`
	ScheduledTime     *string    `json:"scheduled_time"`
	Facilitator       *string    `json:"facilitator"`
	TargetAudience    *string    `json:"target_audience"`
	ExpectedOutcomes  *string    `json:"expected_outcomes"`
	EngagementMetrics StringList `json:"engagement_metrics"`
	Resources         StringList `json:"resources"`
	Tags              StringList `json:"tags"`
}

type UpdateSessionInput struct {
	Title             *string     `json:"title"`
	Description       *string     `json:"description"`
	SessionType       *string     `json:"session_type"`
	Topic             *string     `json:"topic"`
	MaxParticipants   *int        `json:"max_participants"`
	Duration          *string     `json:"duration"`
	ScheduledDate     *string     `json:"scheduled_date"`
	ScheduledTime     *string     `json:"scheduled_time"`
	Facilitator       *string     `json:"facilitator"`
	TargetAudience    *string     `json:"target_audience"`
	ExpectedOutcomes  *string     `json:"expected_outcomes"`
	EngagementMetrics *StringList `json:"engagement_metrics"`
	Resources         *StringList `json:"resources"`
	Tags              *StringList `json:"tags"`
	Status            *string     `json:"status"`
}

type SessionFilter struct {
	Status    string
	PartnerID string
	Page
}

// Question is asked by a participant within a session.
type Question struct {
	ID           string    `db:"id" json:"id"`
	SessionID    string    `db:"session_id" json:"session_id"`
	UserID       *string   `db:"user_id" json:"user_id"`
	QuestionText string    `db:"question_text" json:"question_text"`
	Status       string    `db:"status" json:"status"`
	Upvotes      int       `db:"upvotes" json:"upvotes"`
	AnswerCount  *int      `db:"answer_count" json:"answer_count,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateQuestionInput struct {
	SessionID    string  `json:"session_id" binding:"required"`
	UserID       *string `json:"user_id"`
	QuestionText string  `json:"question_text" binding:"required"`
}

type QuestionStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type QuestionFilter struct {
	SessionID string
	Status    string
	Page
}

// Answer responds to a question, optionally on behalf of a partner.
type Answer struct {
	ID           string    `db:"id" json:"id"`
	QuestionID   string    `db:"question_id" json:"question_id"`
	SessionID    *string   `db:"session_id" json:"session_id"`
	PartnerID    *string   `db:"partner_id" json:"partner_id"`
	PartnerName  *string   `db:"partner_name" json:"partner_name,omitempty"`
	AnswerText   string    `db:"answer_text" json:"answer_text"`
	IsVerified   bool      `db:"is_verified" json:"is_verified"`
	HelpfulCount int       `db:"helpful_count" json:"helpful_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateAnswerInput struct {
	QuestionID string  `json:"question_id" binding:"required"`
	SessionID  *string `json:"session_id"`
	PartnerID  *string `json:"partner_id"`
	AnswerText string  `json:"answer_text" binding:"required"`
}

type UpdateAnswerInput struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

// VerifyAnswerInput marks an answer verified unless IsVerified is explicitly false.
type VerifyAnswerInput struct {
	IsVerified *bool `json:"is_verified"`
}

type AnswerFilter struct {
	QuestionID string
	SessionID  string
	Page
}

package models

import "time"

// Risk levels shared by risk assessments and text analyses.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// RiskAssessment is a self-reported questionnaire with a derived risk level.
// RiskLevel is computed once at insert and never recomputed.
type RiskAssessment struct {
	ID             string    `db:"id" json:"id"`
	UserID         *string   `db:"user_id" json:"user_id"`
	DigitalHarm    *string   `db:"digital_harm" json:"digital_harm"`
	Platform       *string   `db:"platform" json:"platform"`
	Frequency      *string   `db:"frequency" json:"frequency"`
	SafetyFeeling  *int      `db:"safety_feeling" json:"safety_feeling"`
	EscalatingRisk *string   `db:"escalating_risk" json:"escalating_risk"`
	CanBlockReport bool      `db:"can_block_report" json:"can_block_report"`
	RiskLevel      string    `db:"risk_level" json:"risk_level"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateRiskAssessmentInput struct {
	UserID         *string `json:"user_id"`
	DigitalHarm    *string `json:"digital_harm"`
	Platform       *string `json:"platform"`
	Frequency      *string `json:"frequency"`
	SafetyFeeling  *int    `json:"safety_feeling"`
	EscalatingRisk *string `json:"escalating_risk"`
	CanBlockReport *bool   `json:"can_block_report"`
}

type RiskAssessmentFilter struct {
	UserID string
	Page
}

// AIAnalysis is a stored triage of free text. Immutable once created.
type AIAnalysis struct {
	ID              string    `db:"id" json:"id"`
	UserID          *string   `db:"user_id" json:"user_id"`
	InputText       string    `db:"input_text" json:"input_text"`
	AnalysisResult  string    `db:"analysis_result" json:"analysis_result"`
	RiskLevel       string    `db:"risk_level" json:"risk_level"`
	ConfidenceScore int       `db:"confidence_score" json:"confidence_score"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type AnalyzeInput struct {
	UserID    *string `json:"user_id"`
	InputText string  `json:"input_text"`
}

type AIAnalysisFilter struct {
	UserID string
	Page
}

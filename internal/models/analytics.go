package models

// Dashboard holds platform-wide counters for the analytics overview.
type Dashboard struct {
	Partners          int            `json:"partners"`
	PublishedTips     int            `json:"published_tips"`
	ActiveCampaigns   int            `json:"active_campaigns"`
	ScheduledSessions int            `json:"scheduled_sessions"`
	PendingQuestions  int            `json:"pending_questions"`
	AnalysesByRisk    map[string]int `json:"analyses_by_risk"`
	AssessmentsByRisk map[string]int `json:"assessments_by_risk"`
}

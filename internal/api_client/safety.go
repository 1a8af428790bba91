package api_client

import (
	"context"
	"net/http"

	"navio/internal/models"
)

func (c *Client) ListQuizResults(ctx context.Context, f models.QuizResultFilter) ([]models.QuizResult, error) {
	q := pageQuery(f.Page)
	setIf(q, "user_id", f.UserID)
	setIf(q, "quiz_id", f.QuizID)

	var out []models.QuizResult
	err := c.do(ctx, http.MethodGet, "/quiz/results", q, nil, &out)
	return out, err
}

func (c *Client) GetQuizResult(ctx context.Context, id string) (*models.QuizResult, error) {
	var out models.QuizResult
	if err := c.do(ctx, http.MethodGet, idPath("/quiz/results", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitQuizResult(ctx context.Context, in models.CreateQuizResultInput) (*models.QuizResult, error) {
	var out models.QuizResult
	if err := c.do(ctx, http.MethodPost, "/quiz/results", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) QuizStats(ctx context.Context, userID string) (*models.QuizStats, error) {
	var out models.QuizStats
	if err := c.do(ctx, http.MethodGet, idPath("/quiz/stats", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRiskAssessments(ctx context.Context, f models.RiskAssessmentFilter) ([]models.RiskAssessment, error) {
	q := pageQuery(f.Page)
	setIf(q, "user_id", f.UserID)

	var out []models.RiskAssessment
	err := c.do(ctx, http.MethodGet, "/risk", q, nil, &out)
	return out, err
}

func (c *Client) GetRiskAssessment(ctx context.Context, id string) (*models.RiskAssessment, error) {
	var out models.RiskAssessment
	if err := c.do(ctx, http.MethodGet, idPath("/risk", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRiskAssessment(ctx context.Context, in models.CreateRiskAssessmentInput) (*models.RiskAssessment, error) {
	var out models.RiskAssessment
	if err := c.do(ctx, http.MethodPost, "/risk", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAnalyses(ctx context.Context, f models.AIAnalysisFilter) ([]models.AIAnalysis, error) {
	q := pageQuery(f.Page)
	setIf(q, "user_id", f.UserID)

	var out []models.AIAnalysis
	err := c.do(ctx, http.MethodGet, "/ai", q, nil, &out)
	return out, err
}

func (c *Client) GetAnalysis(ctx context.Context, id string) (*models.AIAnalysis, error) {
	var out models.AIAnalysis
	if err := c.do(ctx, http.MethodGet, idPath("/ai", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze stores and returns a triage of in.InputText.
func (c *Client) Analyze(ctx context.Context, in models.AnalyzeInput) (*models.AIAnalysis, error) {
	var out models.AIAnalysis
	if err := c.do(ctx, http.MethodPost, "/ai/analyze", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// The panic endpoints act on the token holder's card.

func (c *Client) GetPanicInfo(ctx context.Context) (*models.PanicInfo, error) {
	var out models.PanicInfo
	if err := c.do(ctx, http.MethodGet, "/panic", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SavePanicInfo(ctx context.Context, in models.PanicInfoInput) (*models.PanicInfo, error) {
	var out models.PanicInfo
	if err := c.do(ctx, http.MethodPost, "/panic", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePanicInfo(ctx context.Context, in models.PanicInfoInput) (*models.PanicInfo, error) {
	var out models.PanicInfo
	if err := c.do(ctx, http.MethodPut, "/panic", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePanicInfo(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/panic", nil, nil, nil)
}

func (c *Client) SendPanicAlert(ctx context.Context) (bool, error) {
	var out struct {
		Sent bool `json:"sent"`
	}
	err := c.do(ctx, http.MethodPost, "/panic/alert", nil, nil, &out)
	return out.Sent, err
}

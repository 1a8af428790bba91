package api_client

import (
	"context"
	"net/http"

	"navio/internal/models"
)

func (c *Client) ListSessions(ctx context.Context, f models.SessionFilter) ([]models.Session, error) {
	q := pageQuery(f.Page)
	setIf(q, "status", f.Status)
	setIf(q, "partner_id", f.PartnerID)

	var out []models.Session
	err := c.do(ctx, http.MethodGet, "/sessions", q, nil, &out)
	return out, err
}

func (c *Client) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodGet, idPath("/sessions", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSession(ctx context.Context, in models.CreateSessionInput) (*models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodPost, "/sessions", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, in models.UpdateSessionInput) (*models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodPut, idPath("/sessions", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) JoinSession(ctx context.Context, id string) (int, error) {
	var out struct {
		ParticipantCount int `json:"participant_count"`
	}
	err := c.do(ctx, http.MethodPost, idPath("/sessions", id, "join"), nil, nil, &out)
	return out.ParticipantCount, err
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath("/sessions", id), nil, nil, nil)
}

func (c *Client) ListQuestions(ctx context.Context, f models.QuestionFilter) ([]models.Question, error) {
	q := pageQuery(f.Page)
	setIf(q, "session_id", f.SessionID)
	setIf(q, "status", f.Status)

	var out []models.Question
	err := c.do(ctx, http.MethodGet, "/questions", q, nil, &out)
	return out, err
}

func (c *Client) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	var out models.Question
	if err := c.do(ctx, http.MethodGet, idPath("/questions", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateQuestion(ctx context.Context, in models.CreateQuestionInput) (*models.Question, error) {
	var out models.Question
	if err := c.do(ctx, http.MethodPost, "/questions", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpvoteQuestion(ctx context.Context, id string) (int, error) {
	var out struct {
		Upvotes int `json:"upvotes"`
	}
	err := c.do(ctx, http.MethodPost, idPath("/questions", id, "upvote"), nil, nil, &out)
	return out.Upvotes, err
}

func (c *Client) UpdateQuestionStatus(ctx context.Context, id, status string) (*models.Question, error) {
	var out models.Question
	in := models.QuestionStatusInput{Status: status}
	if err := c.do(ctx, http.MethodPatch, idPath("/questions", id, "status"), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath("/questions", id), nil, nil, nil)
}

func (c *Client) ListAnswers(ctx context.Context, f models.AnswerFilter) ([]models.Answer, error) {
	q := pageQuery(f.Page)
	setIf(q, "question_id", f.QuestionID)
	setIf(q, "session_id", f.SessionID)

	var out []models.Answer
	err := c.do(ctx, http.MethodGet, "/answers", q, nil, &out)
	return out, err
}

func (c *Client) GetAnswer(ctx context.Context, id string) (*models.Answer, error) {
	var out models.Answer
	if err := c.do(ctx, http.MethodGet, idPath("/answers", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAnswer(ctx context.Context, in models.CreateAnswerInput) (*models.Answer, error) {
	var out models.Answer
	if err := c.do(ctx, http.MethodPost, "/answers", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAnswer(ctx context.Context, id, text string) (*models.Answer, error) {
	var out models.Answer
	in := models.UpdateAnswerInput{AnswerText: text}
	if err := c.do(ctx, http.MethodPut, idPath("/answers", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkAnswerHelpful(ctx context.Context, id string) (int, error) {
	var out struct {
		HelpfulCount int `json:"helpful_count"`
	}
	err := c.do(ctx, http.MethodPost, idPath("/answers", id, "helpful"), nil, nil, &out)
	return out.HelpfulCount, err
}

func (c *Client) VerifyAnswer(ctx context.Context, id string, verified bool) (*models.Answer, error) {
	var out models.Answer
	in := models.VerifyAnswerInput{IsVerified: &verified}
	if err := c.do(ctx, http.MethodPatch, idPath("/answers", id, "verify"), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAnswer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath("/answers", id), nil, nil, nil)
}

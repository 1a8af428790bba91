package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const answerNotFound = "Answer not found"

type AnswerHandler interface {
	ListAnswers(c *gin.Context)
	GetAnswer(c *gin.Context)
	CreateAnswer(c *gin.Context)
	UpdateAnswer(c *gin.Context)
	MarkHelpful(c *gin.Context)
	VerifyAnswer(c *gin.Context)
	DeleteAnswer(c *gin.Context)
}

type answerHandler struct {
	repo   repository.AnswerRepository
	paging Paging
	logger *zap.Logger
}

func NewAnswerHandler(repo repository.AnswerRepository, paging Paging, logger *zap.Logger) AnswerHandler {
	return &answerHandler{repo: repo, paging: paging, logger: logger}
}

// ListAnswers handles GET /api/answers?question_id=&session_id=
// Verified answers come first, then the most helpful, then the oldest.
func (h *answerHandler) ListAnswers(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	answers, err := h.repo.List(c.Request.Context(), models.AnswerFilter{
		QuestionID: c.Query("question_id"),
		SessionID:  c.Query("session_id"),
		Page:       page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

// GetAnswer handles GET /api/answers/:id
func (h *answerHandler) GetAnswer(c *gin.Context) {
	id, ok := pathID(c, answerNotFound)
	if !ok {
		return
	}

	answer, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// CreateAnswer handles POST /api/answers and marks the question answered.
func (h *answerHandler) CreateAnswer(c *gin.Context) {
	var in models.CreateAnswerInput
	if !bindJSON(c, &in, "Question ID and answer text are required") {
		return
	}

	answer, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Answer posted",
		zap.String("answer_id", answer.ID),
		zap.String("question_id", answer.QuestionID))
	c.JSON(http.StatusCreated, answer)
}

// UpdateAnswer handles PUT /api/answers/:id
func (h *answerHandler) UpdateAnswer(c *gin.Context) {
	id, ok := pathID(c, answerNotFound)
	if !ok {
		return
	}
	var in models.UpdateAnswerInput
	if !bindJSON(c, &in, "Answer text is required") {
		return
	}

	answer, err := h.repo.UpdateText(c.Request.Context(), id, in.AnswerText)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// MarkHelpful handles POST /api/answers/:id/helpful
func (h *answerHandler) MarkHelpful(c *gin.Context) {
	id, ok := pathID(c, answerNotFound)
	if !ok {
		return
	}

	count, err := h.repo.MarkHelpful(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"helpful_count": count})
}

// VerifyAnswer handles PATCH /api/answers/:id/verify. Anything but an
// explicit is_verified=false verifies the answer.
func (h *answerHandler) VerifyAnswer(c *gin.Context) {
	id, ok := pathID(c, answerNotFound)
	if !ok {
		return
	}
	var in models.VerifyAnswerInput
	if !bindOptionalJSON(c, &in) {
		return
	}
	verified := in.IsVerified == nil || *in.IsVerified

	answer, err := h.repo.SetVerified(c.Request.Context(), id, verified)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Answer verification changed", zap.String("answer_id", id), zap.Bool("verified", verified))
	c.JSON(http.StatusOK, answer)
}

// DeleteAnswer handles DELETE /api/answers/:id
func (h *answerHandler) DeleteAnswer(c *gin.Context) {
	id, ok := pathID(c, answerNotFound)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Answer")
}

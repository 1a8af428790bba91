package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const questionNotFound = "Question not found"

type QuestionHandler interface {
	ListQuestions(c *gin.Context)
	GetQuestion(c *gin.Context)
	CreateQuestion(c *gin.Context)
	UpvoteQuestion(c *gin.Context)
	UpdateQuestionStatus(c *gin.Context)
	DeleteQuestion(c *gin.Context)
}

type questionHandler struct {
	repo   repository.QuestionRepository
	paging Paging
	logger *zap.Logger
}

func NewQuestionHandler(repo repository.QuestionRepository, paging Paging, logger *zap.Logger) QuestionHandler {
	return &questionHandler{repo: repo, paging: paging, logger: logger}
}

// ListQuestions handles GET /api/questions?session_id=&status=
func (h *questionHandler) ListQuestions(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	questions, err := h.repo.List(c.Request.Context(), models.QuestionFilter{
		SessionID: c.Query("session_id"),
		Status:    c.Query("status"),
		Page:      page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion handles GET /api/questions/:id
func (h *questionHandler) GetQuestion(c *gin.Context) {
	id, ok := pathID(c, questionNotFound)
	if !ok {
		return
	}

	question, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestion handles POST /api/questions
func (h *questionHandler) CreateQuestion(c *gin.Context) {
	var in models.CreateQuestionInput
	if !bindJSON(c, &in, "Session ID and question text are required") {
		return
	}

	question, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Debug("Question posted",
		zap.String("question_id", question.ID),
		zap.String("session_id", question.SessionID))
	c.JSON(http.StatusCreated, question)
}

// UpvoteQuestion handles POST /api/questions/:id/upvote
func (h *questionHandler) UpvoteQuestion(c *gin.Context) {
	id, ok := pathID(c, questionNotFound)
	if !ok {
		return
	}

	upvotes, err := h.repo.Upvote(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upvotes": upvotes})
}

// UpdateQuestionStatus handles PATCH /api/questions/:id/status
func (h *questionHandler) UpdateQuestionStatus(c *gin.Context) {
	id, ok := pathID(c, questionNotFound)
	if !ok {
		return
	}
	var in models.QuestionStatusInput
	if !bindJSON(c, &in, "Status is required") {
		return
	}

	question, err := h.repo.UpdateStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion handles DELETE /api/questions/:id
func (h *questionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, questionNotFound)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Question")
}

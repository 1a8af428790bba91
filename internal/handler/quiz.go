package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const quizResultNotFound = "Quiz result not found"

type QuizHandler interface {
	ListResults(c *gin.Context)
	GetResult(c *gin.Context)
	SubmitResult(c *gin.Context)
	GetUserStats(c *gin.Context)
}

type quizHandler struct {
	repo   repository.QuizRepository
	paging Paging
	logger *zap.Logger
}

func NewQuizHandler(repo repository.QuizRepository, paging Paging, logger *zap.Logger) QuizHandler {
	return &quizHandler{repo: repo, paging: paging, logger: logger}
}

// ListResults handles GET /api/quiz/results?user_id=&quiz_id=
func (h *quizHandler) ListResults(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	results, err := h.repo.List(c.Request.Context(), models.QuizResultFilter{
		UserID: c.Query("user_id"),
		QuizID: c.Query("quiz_id"),
		Page:   page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetResult handles GET /api/quiz/results/:id
func (h *quizHandler) GetResult(c *gin.Context) {
	id, ok := pathID(c, quizResultNotFound)
	if !ok {
		return
	}

	result, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitResult handles POST /api/quiz/results
func (h *quizHandler) SubmitResult(c *gin.Context) {
	var in models.CreateQuizResultInput
	if !bindJSON(c, &in, "Quiz ID, score, and total points are required") {
		return
	}

	result, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Debug("Quiz result stored",
		zap.String("result_id", result.ID),
		zap.String("quiz_id", result.QuizID),
		zap.Int("score", result.Score))
	c.JSON(http.StatusCreated, result)
}

// GetUserStats handles GET /api/quiz/stats/:user_id
func (h *quizHandler) GetUserStats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
	"navio/internal/triage"
)

const riskNotFound = "Risk assessment not found"

type RiskHandler interface {
	ListAssessments(c *gin.Context)
	GetAssessment(c *gin.Context)
	CreateAssessment(c *gin.Context)
}

type riskHandler struct {
	repo   repository.RiskRepository
	paging Paging
	logger *zap.Logger
}

func NewRiskHandler(repo repository.RiskRepository, paging Paging, logger *zap.Logger) RiskHandler {
	return &riskHandler{repo: repo, paging: paging, logger: logger}
}

// ListAssessments handles GET /api/risk?user_id=
func (h *riskHandler) ListAssessments(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	assessments, err := h.repo.List(c.Request.Context(), models.RiskAssessmentFilter{
		UserID: c.Query("user_id"),
		Page:   page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, assessments)
}

// GetAssessment handles GET /api/risk/:id
func (h *riskHandler) GetAssessment(c *gin.Context) {
	id, ok := pathID(c, riskNotFound)
	if !ok {
		return
	}

	assessment, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// CreateAssessment handles POST /api/risk. The level is derived here and stored once.
func (h *riskHandler) CreateAssessment(c *gin.Context) {
	var in models.CreateRiskAssessmentInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	level := triage.AssessRisk(in)
	assessment, err := h.repo.Create(c.Request.Context(), in, level)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Risk assessment recorded",
		zap.String("assessment_id", assessment.ID),
		zap.String("risk_level", level))
	c.JSON(http.StatusCreated, assessment)
}

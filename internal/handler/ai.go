package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/apperror"
	"navio/internal/models"
	"navio/internal/repository"
	"navio/internal/triage"
)

const (
	analysisNotFound  = "AI analysis not found"
	inputTextRequired = "Input text is required"
)

type AnalysisHandler interface {
	ListAnalyses(c *gin.Context)
	GetAnalysis(c *gin.Context)
	Analyze(c *gin.Context)
}

type analysisHandler struct {
	repo   repository.AnalysisRepository
	paging Paging
	logger *zap.Logger
}

func NewAnalysisHandler(repo repository.AnalysisRepository, paging Paging, logger *zap.Logger) AnalysisHandler {
	return &analysisHandler{repo: repo, paging: paging, logger: logger}
}

// ListAnalyses handles GET /api/ai?user_id=
func (h *analysisHandler) ListAnalyses(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	analyses, err := h.repo.List(c.Request.Context(), models.AIAnalysisFilter{
		UserID: c.Query("user_id"),
		Page:   page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, analyses)
}

// GetAnalysis handles GET /api/ai/:id
func (h *analysisHandler) GetAnalysis(c *gin.Context) {
	id, ok := pathID(c, analysisNotFound)
	if !ok {
		return
	}

	analysis, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Analyze handles POST /api/ai/analyze and POST /api/ai
func (h *analysisHandler) Analyze(c *gin.Context) {
	var in models.AnalyzeInput
	if !bindJSON(c, &in, inputTextRequired) {
		return
	}
	if strings.TrimSpace(in.InputText) == "" {
		fail(c, apperror.Validation(inputTextRequired))
		return
	}

	result := triage.Analyze(in.InputText)
	analysis := &models.AIAnalysis{
		UserID:          in.UserID,
		InputText:       in.InputText,
		AnalysisResult:  result.Classification,
		RiskLevel:       result.RiskLevel,
		ConfidenceScore: result.Confidence,
	}
	if err := h.repo.Create(c.Request.Context(), analysis); err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Text analyzed",
		zap.String("analysis_id", analysis.ID),
		zap.String("risk_level", analysis.RiskLevel),
		zap.Int("confidence", analysis.ConfidenceScore),
		zap.Strings("matches", result.Matches))
	c.JSON(http.StatusCreated, analysis)
}

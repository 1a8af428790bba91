package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/repository"
)

type AnalyticsHandler interface {
	GetDashboard(c *gin.Context)
}

type analyticsHandler struct {
	repo   repository.AnalyticsRepository
	logger *zap.Logger
}

func NewAnalyticsHandler(repo repository.AnalyticsRepository, logger *zap.Logger) AnalyticsHandler {
	return &analyticsHandler{repo: repo, logger: logger}
}

// GetDashboard handles GET /api/analytics/dashboard
func (h *analyticsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.repo.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/apperror"
	"navio/internal/middleware"
	"navio/internal/models"
	"navio/internal/repository"
)

// AlertNotifier delivers an emergency alert built from a user's panic card.
type AlertNotifier interface {
	Enabled() bool
	SendPanicAlert(ctx context.Context, info models.PanicInfo, user models.AuthUser) error
}

type PanicHandler interface {
	GetPanicInfo(c *gin.Context)
	SavePanicInfo(c *gin.Context)
	UpdatePanicInfo(c *gin.Context)
	DeletePanicInfo(c *gin.Context)
	SendAlert(c *gin.Context)
}

type panicHandler struct {
	repo     repository.PanicInfoRepository
	notifier AlertNotifier
	logger   *zap.Logger
}

// NewPanicHandler wires the owner-scoped panic card endpoints. notifier may be nil.
func NewPanicHandler(repo repository.PanicInfoRepository, notifier AlertNotifier, logger *zap.Logger) PanicHandler {
	return &panicHandler{repo: repo, notifier: notifier, logger: logger}
}

func owner(c *gin.Context) (models.AuthUser, bool) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		fail(c, apperror.Unauthorized("Authentication required"))
	}
	return user, ok
}

// GetPanicInfo handles GET /api/panic
func (h *panicHandler) GetPanicInfo(c *gin.Context) {
	user, ok := owner(c)
	if !ok {
		return
	}

	info, err := h.repo.GetActive(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// SavePanicInfo handles POST /api/panic. Saving again overwrites the supplied
// fields and reactivates a deactivated card.
func (h *panicHandler) SavePanicInfo(c *gin.Context) {
	user, ok := owner(c)
	if !ok {
		return
	}
	var in models.PanicInfoInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	info, err := h.repo.Upsert(c.Request.Context(), user.ID, in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Panic info saved", zap.String("user_id", user.ID))
	c.JSON(http.StatusCreated, info)
}

// UpdatePanicInfo handles PUT /api/panic
func (h *panicHandler) UpdatePanicInfo(c *gin.Context) {
	user, ok := owner(c)
	if !ok {
		return
	}
	var in models.PanicInfoInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	info, err := h.repo.Update(c.Request.Context(), user.ID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// DeletePanicInfo handles DELETE /api/panic. The row is kept and flagged inactive.
func (h *panicHandler) DeletePanicInfo(c *gin.Context) {
	user, ok := owner(c)
	if !ok {
		return
	}

	if err := h.repo.Deactivate(c.Request.Context(), user.ID); err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Panic info deactivated", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Panic info deactivated successfully"})
}

// SendAlert handles POST /api/panic/alert
func (h *panicHandler) SendAlert(c *gin.Context) {
	user, ok := owner(c)
	if !ok {
		return
	}
	if h.notifier == nil || !h.notifier.Enabled() {
		fail(c, apperror.Unavailable("Panic alerts are not configured"))
		return
	}

	info, err := h.repo.GetActive(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.notifier.SendPanicAlert(c.Request.Context(), *info, user); err != nil {
		h.logger.Error("Failed to send panic alert", zap.String("user_id", user.ID), zap.Error(err))
		fail(c, err)
		return
	}

	h.logger.Warn("Panic alert sent", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"sent": true})
}

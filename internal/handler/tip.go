package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const tipNotFound = "Tip not found"

type TipHandler interface {
	ListTips(c *gin.Context)
	GetTip(c *gin.Context)
	CreateTip(c *gin.Context)
	UpdateTip(c *gin.Context)
	LikeTip(c *gin.Context)
	DeleteTip(c *gin.Context)
}

type tipHandler struct {
	repo   repository.TipRepository
	paging Paging
	logger *zap.Logger
}

func NewTipHandler(repo repository.TipRepository, paging Paging, logger *zap.Logger) TipHandler {
	return &tipHandler{repo: repo, paging: paging, logger: logger}
}

// ListTips handles GET /api/tips?category=&status=&partner_id=
func (h *tipHandler) ListTips(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	tips, err := h.repo.List(c.Request.Context(), models.TipFilter{
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		PartnerID: c.Query("partner_id"),
		Page:      page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}

// GetTip handles GET /api/tips/:id. Each read counts as a view.
func (h *tipHandler) GetTip(c *gin.Context) {
	id, ok := pathID(c, tipNotFound)
	if !ok {
		return
	}

	tip, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

// CreateTip handles POST /api/tips
func (h *tipHandler) CreateTip(c *gin.Context) {
	var in models.CreateTipInput
	if !bindJSON(c, &in, "Title, category, and content are required") {
		return
	}

	tip, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Tip created", zap.String("tip_id", tip.ID), zap.String("category", tip.Category))
	c.JSON(http.StatusCreated, tip)
}

// UpdateTip handles PUT /api/tips/:id
func (h *tipHandler) UpdateTip(c *gin.Context) {
	id, ok := pathID(c, tipNotFound)
	if !ok {
		return
	}
	var in models.UpdateTipInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	tip, err := h.repo.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

// LikeTip handles POST /api/tips/:id/like
func (h *tipHandler) LikeTip(c *gin.Context) {
	id, ok := pathID(c, tipNotFound)
	if !ok {
		return
	}

	likes, err := h.repo.Like(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes_count": likes})
}

// DeleteTip handles DELETE /api/tips/:id
func (h *tipHandler) DeleteTip(c *gin.Context) {
	id, ok := pathID(c, tipNotFound)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Tip")
}

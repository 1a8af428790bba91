package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const partnerNotFound = "Partner not found"

type PartnerHandler interface {
	ListPartners(c *gin.Context)
	GetPartner(c *gin.Context)
	CreatePartner(c *gin.Context)
	UpdatePartner(c *gin.Context)
	DeletePartner(c *gin.Context)
}

type partnerHandler struct {
	repo   repository.PartnerRepository
	paging Paging
	logger *zap.Logger
}

func NewPartnerHandler(repo repository.PartnerRepository, paging Paging, logger *zap.Logger) PartnerHandler {
	return &partnerHandler{repo: repo, paging: paging, logger: logger}
}

// ListPartners handles GET /api/partners
func (h *partnerHandler) ListPartners(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	partners, err := h.repo.List(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// GetPartner handles GET /api/partners/:id
func (h *partnerHandler) GetPartner(c *gin.Context) {
	id, ok := pathID(c, partnerNotFound)
	if !ok {
		return
	}

	partner, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// CreatePartner handles POST /api/partners
func (h *partnerHandler) CreatePartner(c *gin.Context) {
	var in models.CreatePartnerInput
	if !bindJSON(c, &in, "Organization name and email are required") {
		return
	}

	partner, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Partner created",
		zap.String("partner_id", partner.ID),
		zap.String("organization", partner.OrganizationName))
	c.JSON(http.StatusCreated, partner)
}

// UpdatePartner handles PUT /api/partners/:id
func (h *partnerHandler) UpdatePartner(c *gin.Context) {
	id, ok := pathID(c, partnerNotFound)
	if !ok {
		return
	}
	var in models.UpdatePartnerInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	partner, err := h.repo.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// DeletePartner handles DELETE /api/partners/:id
func (h *partnerHandler) DeletePartner(c *gin.Context) {
	id, ok := pathID(c, partnerNotFound)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Partner deleted", zap.String("partner_id", id))
	deleted(c, "Partner")
}

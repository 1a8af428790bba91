package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const campaignNotFound = "Campaign not found"

type CampaignHandler interface {
	ListCampaigns(c *gin.Context)
	GetCampaign(c *gin.Context)
	CreateCampaign(c *gin.Context)
	UpdateCampaign(c *gin.Context)
	DeleteCampaign(c *gin.Context)
}

type campaignHandler struct {
	repo   repository.CampaignRepository
	paging Paging
	logger *zap.Logger
}

func NewCampaignHandler(repo repository.CampaignRepository, paging Paging, logger *zap.Logger) CampaignHandler {
	return &campaignHandler{repo: repo, paging: paging, logger: logger}
}

// ListCampaigns handles GET /api/campaigns?status=&partner_id=
func (h *campaignHandler) ListCampaigns(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	campaigns, err := h.repo.List(c.Request.Context(), models.CampaignFilter{
		Status:    c.Query("status"),
		PartnerID: c.Query("partner_id"),
		Page:      page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaign handles GET /api/campaigns/:id
func (h *campaignHandler) GetCampaign(c *gin.Context) {
	id, ok := pathID(c, campaignNotFound)
	if !ok {
		return
	}

	campaign, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateCampaign handles POST /api/campaigns
func (h *campaignHandler) CreateCampaign(c *gin.Context) {
	var in models.CreateCampaignInput
	if !bindJSON(c, &in, "Title and description are required") {
		return
	}

	campaign, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Campaign created", zap.String("campaign_id", campaign.ID))
	c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign handles PUT /api/campaigns/:id
func (h *campaignHandler) UpdateCampaign(c *gin.Context) {
	id, ok := pathID(c, campaignNotFound)
	if !ok {
		return
	}
	var in models.UpdateCampaignInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	campaign, err := h.repo.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /api/campaigns/:id
func (h *campaignHandler) DeleteCampaign(c *gin.Context) {
	id, ok := pathID(c, campaignNotFound)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Campaign")
}

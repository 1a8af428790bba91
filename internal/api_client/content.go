package api_client

import (
	"context"
	"net/http"

	"navio/internal/models"
)

func (c *Client) ListPartners(ctx context.Context, page models.Page) ([]models.Partner, error) {
	var out []models.Partner
	err := c.do(ctx, http.MethodGet, "/partners", pageQuery(page), nil, &out)
	return out, err
}

func (c *Client) GetPartner(ctx context.Context, id string) (*models.Partner, error) {
	var out models.Partner
	if err := c.do(ctx, http.MethodGet, idPath("/partners", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePartner requires a token.
func (c *Client) CreatePartner(ctx context.Context, in models.CreatePartnerInput) (*models.Partner, error) {
	var out models.Partner
	if err := c.do(ctx, http.MethodPost, "/partners", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePartner(ctx context.Context, id string, in models.UpdatePartnerInput) (*models.Partner, error) {
	var out models.Partner
	if err := c.do(ctx, http.MethodPut, idPath("/partners", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath("/partners", id), nil, nil, nil)
}

func (c *Client) ListTips(ctx context.Context, f models.TipFilter) ([]models.Tip, error) {
	q := pageQuery(f.Page)
	setIf(q, "category", f.Category)
	setIf(q, "status", f.Status)
	setIf(q, "partner_id", f.PartnerID)

	var out []models.Tip
	err := c.do(ctx, http.MethodGet, "/tips", q, nil, &out)
	return out, err
}

// GetTip counts as a view on the server.
func (c *Client) GetTip(ctx context.Context, id string) (*models.Tip, error) {
	var out models.Tip
	if err := c.do(ctx, http.MethodGet, idPath("/tips", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTip(ctx context.Context, in models.CreateTipInput) (*models.Tip, error) {
	var out models.Tip
	if err := c.do(ctx, http.MethodPost, "/tips", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTip(ctx context.Context, id string, in models.UpdateTipInput) (*models.Tip, error) {
	var out models.Tip
	if err := c.do(ctx, http.MethodPut, idPath("/tips", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LikeTip(ctx context.Context, id string) (int, error) {
	var out struct {
		LikesCount int `json:"likes_count"`
	}
	err := c.do(ctx, http.MethodPost, idPath("/tips", id, "like"), nil, nil, &out)
	return out.LikesCount, err
}

func (c *Client) DeleteTip(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath("/tips", id), nil, nil, nil)
}

func (c *Client) ListCampaigns(ctx context.Context, f models.CampaignFilter) ([]models.Campaign, error) {
	q := pageQuery(f.Page)
	setIf(q, "status", f.Status)
	setIf(q, "partner_id", f.PartnerID)

	var out []models.Campaign
	err := c.do(ctx, http.MethodGet, "/campaigns", q, nil, &out)
	return out, err
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	var out models.Campaign
	if err := c.do(ctx, http.MethodGet, idPath("/campaigns", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCampaign(ctx context.Context, in models.CreateCampaignInput) (*models.Campaign, error) {
	var out models.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, in models.UpdateCampaignInput) (*models.Campaign, error) {
	var out models.Campaign
	if err := c.do(ctx, http.MethodPut, idPath("/campaigns", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath("/campaigns", id), nil, nil, nil)
}

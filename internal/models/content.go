package models

import "time"

// Tip is a short piece of safety advice.
type Tip struct {
	ID              string     `db:"id" json:"id"`
	PartnerID       *string    `db:"partner_id" json:"partner_id"`
	PartnerName     *string    `db:"partner_name" json:"partner_name,omitempty"`
	Title           string     `db:"title" json:"title"`
	Category        string     `db:"category" json:"category"`
	Content         string     `db:"content" json:"content"`
	TargetAudience  *string    `db:"target_audience" json:"target_audience"`
	Priority        *string    `db:"priority" json:"priority"`
	EstimatedImpact *string    `db:"estimated_impact" json:"estimated_impact"`
	Tags            StringList `db:"tags" json:"tags"`
	Status          string     `db:"status" json:"status"`
	ViewsCount      int        `db:"views_count" json:"views_count"`
	LikesCount      int        `db:"likes_count" json:"likes_count"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateTipInput struct {
	PartnerID       *string    `json:"partner_id"`
	Title           string     `json:"title" binding:"required"`
	Category        string     `json:"category" binding:"required"`
	Content         string     `json:"content" binding:"required"`
	TargetAudience  *string    `json:"target_audience"`
	Priority        *string    `json:"priority"`
	EstimatedImpact *string    `json:"estimated_impact"`
	Tags            StringList `json:"tags"`
}

type UpdateTipInput struct {
	Title           *string     `json:"title"`
	Category        *string     `json:"category"`
	Content         *string     `json:"content"`
	TargetAudience  *string     `json:"target_audience"`
	Priority        *string     `json:"priority"`
	EstimatedImpact *string     `json:"estimated_impact"`
	Tags            *StringList `json:"tags"`
	Status          *string     `json:"status"`
}

// TipFilter narrows tip listings. Empty fields are ignored.
type TipFilter struct {
	Category  string
	Status    string
	PartnerID string
	Page
}

// Campaign is an awareness campaign run by a partner.
type Campaign struct {
	ID             string     `db:"id" json:"id"`
	PartnerID      *string    `db:"partner_id" json:"partner_id"`
	PartnerName    *string    `db:"partner_name" json:"partner_name,omitempty"`
	Title          string     `db:"title" json:"title"`
	Description    string     `db:"description" json:"description"`
	CampaignType   *string    `db:"campaign_type" json:"campaign_type"`
	TargetAudience *string    `db:"target_audience" json:"target_audience"`
	StartDate      *string    `db:"start_date" json:"start_date"`
	EndDate        *string    `db:"end_date" json:"end_date"`
	Platforms      StringList `db:"platforms" json:"platforms"`
	Budget         *string    `db:"budget" json:"budget"`
	Goals          *string    `db:"goals" json:"goals"`
	KPIs           StringList `db:"kpis" json:"kpis"`
	Keywords       StringList `db:"keywords" json:"keywords"`
	Status         string     `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateCampaignInput struct {
	PartnerID      *string    `json:"partner_id"`
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	CampaignType   *string    `json:"campaign_type"`
	TargetAudience *string    `json:"target_audience"`
	StartDate      *string    `json:"start_date"`
	EndDate        *string    `json:"end_date"`
	Platforms      StringList `json:"platforms"`
	Budget         *string    `json:"budget"`
	Goals          *string    `json:"goals"`
	KPIs           StringList `json:"kpis"`
	Keywords       StringList `json:"keywords"`
}

type UpdateCampaignInput struct {
	Title          *string     `json:"title"`
	Description    *string     `json:"description"`
	CampaignType   *string     `json:"campaign_type"`
	TargetAudience *string     `json:"target_audience"`
	StartDate      *string     `json:"start_date"`
	EndDate        *string     `json:"end_date"`
	Platforms      *StringList `json:"platforms"`
	Budget         *string     `json:"budget"`
	Goals          *string     `json:"goals"`
	KPIs           *StringList `json:"kpis"`
	Keywords       *StringList `json:"keywords"`
	Status         *string     `json:"status"`
}

type CampaignFilter struct {
	Status    string
	PartnerID string
	Page
}

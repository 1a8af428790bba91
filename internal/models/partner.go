package models

import "time"

// Partner is an organization publishing content on the platform.
type Partner struct {
	ID                 string    `db:"id" json:"id"`
	OrganizationName   string    `db:"organization_name" json:"organization_name"`
	ContactEmail       string    `db:"contact_email" json:"contact_email"`
	ContactPhone       *string   `db:"contact_phone" json:"contact_phone"`
	Website            *string   `db:"website" json:"website"`
	Description        *string   `db:"description" json:"description"`
	VerificationStatus string    `db:"verification_status" json:"verification_status"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePartnerInput struct {
	OrganizationName string  `json:"organization_name" binding:"required"`
	ContactEmail     string  `json:"contact_email" binding:"required"`
	ContactPhone     *string `json:"contact_phone"`
	Website          *string `json:"website"`
	Description      *string `json:"description"`
}

// UpdatePartnerInput carries a partial update; nil fields keep their stored value.
type UpdatePartnerInput struct {
	OrganizationName   *string `json:"organization_name"`
	ContactEmail       *string `json:"contact_email"`
	ContactPhone       *string `json:"contact_phone"`
	Website            *string `json:"website"`
	Description        *string `json:"description"`
	VerificationStatus *string `json:"verification_status"`
}

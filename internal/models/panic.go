package models

import "time"

// PanicInfo is a user's emergency card. One row per user, soft-deleted via IsActive.
type PanicInfo struct {
	ID                       string    `db:"id" json:"id"`
	UserID                   string    `db:"user_id" json:"user_id"`
	FullName                 *string   `db:"full_name" json:"full_name"`
	IDNumber                 *string   `db:"id_number" json:"id_number"`
	BloodType                *string   `db:"blood_type" json:"blood_type"`
	MedicalConditions        *string   `db:"medical_conditions" json:"medical_conditions"`
	EmergencyHotline         *string   `db:"emergency_hotline" json:"emergency_hotline"`
	TrustedFriend            *string   `db:"trusted_friend" json:"trusted_friend"`
	LegalSupport             *string   `db:"legal_support" json:"legal_support"`
	DigitalViolenceHelpline  *string   `db:"digital_violence_helpline" json:"digital_violence_helpline"`
	EmergencyContactName     *string   `db:"emergency_contact_name" json:"emergency_contact_name"`
	EmergencyContactRelation *string   `db:"emergency_contact_relation" json:"emergency_contact_relation"`
	EmergencyContactPhone    *string   `db:"emergency_contact_phone" json:"emergency_contact_phone"`
	IsActive                 bool      `db:"is_active" json:"is_active"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time `db:"updated_at" json:"updated_at"`
}

// PanicInfoInput is used for both upsert and partial update.
type PanicInfoInput struct {
	FullName                 *string `json:"full_name"`
	IDNumber                 *string `json:"id_number"`
	BloodType                *string `json:"blood_type"`
	MedicalConditions        *string `json:"medical_conditions"`
	EmergencyHotline         *string `json:"emergency_hotline"`
	TrustedFriend            *string `json:"trusted_friend"`
	LegalSupport             *string `json:"legal_support"`
	DigitalViolenceHelpline  *string `json:"digital_violence_helpline"`
	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactRelation *string `json:"emergency_contact_relation"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
}

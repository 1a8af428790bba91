package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/models"
)

const partnerColumns = `id, organization_name, contact_email, contact_phone, website, description,
	verification_status, created_at, updated_at`

// PartnerRepository defines the interface for partner operations
type PartnerRepository interface {
	List(ctx context.Context, page models.Page) ([]models.Partner, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	Create(ctx context.Context, in models.CreatePartnerInput) (*models.Partner, error)
	Update(ctx context.Context, id string, in models.UpdatePartnerInput) (*models.Partner, error)
	Delete(ctx context.Context, id string) error
}

type partnerRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPartnerRepository(db *sqlx.DB, logger *zap.Logger) PartnerRepository {
	return &partnerRepository{db: db, logger: logger}
}

func (r *partnerRepository) List(ctx context.Context, page models.Page) ([]models.Partner, error) {
	query, args := NewFilter().
		OrderBy("created_at DESC").
		Paginate(page).
		Build("SELECT " + partnerColumns + " FROM partners")

	partners := []models.Partner{}
	if err := r.db.SelectContext(ctx, &partners, r.db.Rebind(query), args...); err != nil {
		logQueryError(r.logger, "Failed to list partners", err)
		return nil, classify(err, "Partner not found")
	}
	return partners, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	var p models.Partner
	query := r.db.Rebind("SELECT " + partnerColumns + " FROM partners WHERE id = ?")
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, classify(err, "Partner not found")
	}
	return &p, nil
}

func (r *partnerRepository) Create(ctx context.Context, in models.CreatePartnerInput) (*models.Partner, error) {
	ts := now()
	query := r.db.Rebind(`
		INSERT INTO partners (id, organization_name, contact_email, contact_phone, website, description,
			verification_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + partnerColumns)

	var p models.Partner
	err := r.db.GetContext(ctx, &p, query,
		uuid.NewString(),
		in.OrganizationName,
		in.ContactEmail,
		blankToNil(in.ContactPhone),
		blankToNil(in.Website),
		blankToNil(in.Description),
		"pending",
		ts, ts,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to create partner", err, zap.String("contact_email", in.ContactEmail))
		return nil, classify(err, "Partner not found")
	}
	return &p, nil
}

func (r *partnerRepository) Update(ctx context.Context, id string, in models.UpdatePartnerInput) (*models.Partner, error) {
	query := r.db.Rebind(`
		UPDATE partners
		SET organization_name = COALESCE(?, organization_name),
			contact_email = COALESCE(?, contact_email),
			contact_phone = COALESCE(?, contact_phone),
			website = COALESCE(?, website),
			description = COALESCE(?, description),
			verification_status = COALESCE(?, verification_status),
			updated_at = ?
		WHERE id = ?
		RETURNING ` + partnerColumns)

	var p models.Partner
	err := r.db.GetContext(ctx, &p, query,
		in.OrganizationName,
		in.ContactEmail,
		in.ContactPhone,
		in.Website,
		in.Description,
		in.VerificationStatus,
		now(),
		id,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to update partner", err, zap.String("id", id))
		return nil, classify(err, "Partner not found")
	}
	return &p, nil
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "partners", id, "Partner not found")
}

// blankToNil treats an empty string like an absent value.
func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

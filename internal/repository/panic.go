package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/apperror"
	"navio/internal/models"
)

const panicColumns = `id, user_id, full_name, id_number, blood_type, medical_conditions, emergency_hotline,
	trusted_friend, legal_support, digital_violence_helpline, emergency_contact_name,
	emergency_contact_relation, emergency_contact_phone, is_active, created_at, updated_at`

const panicNotFound = "Panic info not found"

// FieldSealer encrypts sensitive columns at rest.
type FieldSealer interface {
	Seal(plaintext string) (string, error)
	Open(value string) (string, error)
}

// PanicInfoRepository keeps one emergency card per user.
type PanicInfoRepository interface {
	GetActive(ctx context.Context, userID string) (*models.PanicInfo, error)
	// Upsert creates the card or overwrites the supplied fields and reactivates it.
	Upsert(ctx context.Context, userID string, in models.PanicInfoInput) (*models.PanicInfo, error)
	Update(ctx context.Context, userID string, in models.PanicInfoInput) (*models.PanicInfo, error)
	Deactivate(ctx context.Context, userID string) error
}

type panicInfoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
	sealer FieldSealer
}

// NewPanicInfoRepository creates the repository. sealer may be nil, in which
// case id_number and medical_conditions are stored as given.
func NewPanicInfoRepository(db *sqlx.DB, logger *zap.Logger, sealer FieldSealer) PanicInfoRepository {
	return &panicInfoRepository{db: db, logger: logger, sealer: sealer}
}

func (r *panicInfoRepository) GetActive(ctx context.Context, userID string) (*models.PanicInfo, error) {
	var p models.PanicInfo
	query := r.db.Rebind("SELECT " + panicColumns + " FROM panic_info WHERE user_id = ? AND is_active = TRUE")
	if err := r.db.GetContext(ctx, &p, query, userID); err != nil {
		return nil, classify(err, panicNotFound)
	}
	r.open(&p)
	return &p, nil
}

func (r *panicInfoRepository) Upsert(ctx context.Context, userID string, in models.PanicInfoInput) (*models.PanicInfo, error) {
	in = normalizePanicInput(in)
	if err := r.seal(&in); err != nil {
		return nil, err
	}

	ts := now()
	query := r.db.Rebind(`
		INSERT INTO panic_info (id, user_id, full_name, id_number, blood_type, medical_conditions,
			emergency_hotline, trusted_friend, legal_support, digital_violence_helpline,
			emergency_contact_name, emergency_contact_relation, emergency_contact_phone,
			is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = COALESCE(EXCLUDED.full_name, panic_info.full_name),
			id_number = COALESCE(EXCLUDED.id_number, panic_info.id_number),
			blood_type = COALESCE(EXCLUDED.blood_type, panic_info.blood_type),
			medical_conditions = COALESCE(EXCLUDED.medical_conditions, panic_info.medical_conditions),
			emergency_hotline = COALESCE(EXCLUDED.emergency_hotline, panic_info.emergency_hotline),
			trusted_friend = COALESCE(EXCLUDED.trusted_friend, panic_info.trusted_friend),
			legal_support = COALESCE(EXCLUDED.legal_support, panic_info.legal_support),
			digital_violence_helpline = COALESCE(EXCLUDED.digital_violence_helpline, panic_info.digital_violence_helpline),
			emergency_contact_name = COALESCE(EXCLUDED.emergency_contact_name, panic_info.emergency_contact_name),
			emergency_contact_relation = COALESCE(EXCLUDED.emergency_contact_relation, panic_info.emergency_contact_relation),
			emergency_contact_phone = COALESCE(EXCLUDED.emergency_contact_phone, panic_info.emergency_contact_phone),
			is_active = TRUE,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + panicColumns)

	var p models.PanicInfo
	err := r.db.GetContext(ctx, &p, query,
		uuid.NewString(),
		userID,
		in.FullName,
		in.IDNumber,
		in.BloodType,
		in.MedicalConditions,
		in.EmergencyHotline,
		in.TrustedFriend,
		in.LegalSupport,
		in.DigitalViolenceHelpline,
		in.EmergencyContactName,
		in.EmergencyContactRelation,
		in.EmergencyContactPhone,
		ts, ts,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to upsert panic info", err, zap.String("user_id", userID))
		return nil, classify(err, panicNotFound)
	}
	r.open(&p)
	return &p, nil
}

func (r *panicInfoRepository) Update(ctx context.Context, userID string, in models.PanicInfoInput) (*models.PanicInfo, error) {
	if err := r.seal(&in); err != nil {
		return nil, err
	}

	query := r.db.Rebind(`
		UPDATE panic_info
		SET full_name = COALESCE(?, full_name),
			id_number = COALESCE(?, id_number),
			blood_type = COALESCE(?, blood_type),
			medical_conditions = COALESCE(?, medical_conditions),
			emergency_hotline = COALESCE(?, emergency_hotline),
			trusted_friend = COALESCE(?, trusted_friend),
			legal_support = COALESCE(?, legal_support),
			digital_violence_helpline = COALESCE(?, digital_violence_helpline),
			emergency_contact_name = COALESCE(?, emergency_contact_name),
			emergency_contact_relation = COALESCE(?, emergency_contact_relation),
			emergency_contact_phone = COALESCE(?, emergency_contact_phone),
			updated_at = ?
		WHERE user_id = ?
		RETURNING ` + panicColumns)

	var p models.PanicInfo
	err := r.db.GetContext(ctx, &p, query,
		in.FullName,
		in.IDNumber,
		in.BloodType,
		in.MedicalConditions,
		in.EmergencyHotline,
		in.TrustedFriend,
		in.LegalSupport,
		in.DigitalViolenceHelpline,
		in.EmergencyContactName,
		in.EmergencyContactRelation,
		in.EmergencyContactPhone,
		now(),
		userID,
	)
	if err != nil {
		logQueryError(r.logger, "Failed to update panic info", err, zap.String("user_id", userID))
		return nil, classify(err, panicNotFound)
	}
	r.open(&p)
	return &p, nil
}

func (r *panicInfoRepository) Deactivate(ctx context.Context, userID string) error {
	query := r.db.Rebind("UPDATE panic_info SET is_active = FALSE, updated_at = ? WHERE user_id = ?")
	res, err := r.db.ExecContext(ctx, query, now(), userID)
	if err != nil {
		logQueryError(r.logger, "Failed to deactivate panic info", err, zap.String("user_id", userID))
		return classify(err, panicNotFound)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound(panicNotFound)
	}
	return nil
}

func (r *panicInfoRepository) seal(in *models.PanicInfoInput) error {
	if r.sealer == nil {
		return nil
	}
	for _, field := range []**string{&in.IDNumber, &in.MedicalConditions} {
		if *field == nil {
			continue
		}
		sealed, err := r.sealer.Seal(**field)
		if err != nil {
			return fmt.Errorf("failed to seal panic info field: %w", err)
		}
		*field = &sealed
	}
	return nil
}

// open decrypts sealed columns in place. A value that cannot be opened is
// returned as stored.
func (r *panicInfoRepository) open(p *models.PanicInfo) {
	if r.sealer == nil {
		return
	}
	for _, field := range []**string{&p.IDNumber, &p.MedicalConditions} {
		if *field == nil {
			continue
		}
		plain, err := r.sealer.Open(**field)
		if err != nil {
			r.logger.Warn("Failed to open sealed panic info field, continuing with stored value",
				zap.String("user_id", p.UserID), zap.Error(err))
			continue
		}
		*field = &plain
	}
}

// normalizePanicInput treats empty strings as absent so they never overwrite stored values.
func normalizePanicInput(in models.PanicInfoInput) models.PanicInfoInput {
	for _, field := range []**string{
		&in.FullName, &in.IDNumber, &in.BloodType, &in.MedicalConditions, &in.EmergencyHotline,
		&in.TrustedFriend, &in.LegalSupport, &in.DigitalViolenceHelpline, &in.EmergencyContactName,
		&in.EmergencyContactRelation, &in.EmergencyContactPhone,
	} {
		*field = blankToNil(*field)
	}
	return in
}

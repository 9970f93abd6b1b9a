package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

type ContactStore struct {
	db *sql.DB
}

func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactColumns = `id, title_code, last_name, first_name, middle_names, date_of_birth,
	estimated_is_over_eighteen, is_staff, suspended, deceased_date, gender_code,
	domestic_status_code, language_code, nationality_code, interpreter_required,
	created_by, created_time, updated_by, updated_time`

func (s *ContactStore) Save(ctx context.Context, contact *models.Contact) error {
	if contact.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contacts
				(title_code, last_name, first_name, middle_names, date_of_birth,
				 estimated_is_over_eighteen, is_staff, suspended, deceased_date, gender_code,
				 domestic_status_code, language_code, nationality_code, interpreter_required,
				 created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id`,
			contact.TitleCode, contact.LastName, contact.FirstName, contact.MiddleNames,
			contact.DateOfBirth, string(contact.EstimatedIsOverEighteen), contact.IsStaff,
			contact.Suspended, contact.DeceasedDate, contact.GenderCode,
			contact.DomesticStatusCode, contact.LanguageCode, contact.NationalityCode,
			contact.InterpreterRequired, contact.CreatedBy, contact.CreatedTime)
		if err := row.Scan(&contact.ID); err != nil {
			return fmt.Errorf("insert contact: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contacts
		SET title_code = $1, last_name = $2, first_name = $3, middle_names = $4,
			date_of_birth = $5, estimated_is_over_eighteen = $6, is_staff = $7,
			suspended = $8, deceased_date = $9, gender_code = $10,
			domestic_status_code = $11, language_code = $12, nationality_code = $13,
			interpreter_required = $14, updated_by = $15, updated_time = $16
		WHERE id = $17`,
		contact.TitleCode, contact.LastName, contact.FirstName, contact.MiddleNames,
		contact.DateOfBirth, string(contact.EstimatedIsOverEighteen), contact.IsStaff,
		contact.Suspended, contact.DeceasedDate, contact.GenderCode,
		contact.DomesticStatusCode, contact.LanguageCode, contact.NationalityCode,
		contact.InterpreterRequired, contact.UpdatedBy, contact.UpdatedTime, contact.ID)
	if err != nil {
		return fmt.Errorf("update contact: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *ContactStore) FindByID(ctx context.Context, contactID id.ContactID) (*models.Contact, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, contactID)

	var contact models.Contact
	var overEighteen string
	err := row.Scan(&contact.ID, &contact.TitleCode, &contact.LastName, &contact.FirstName,
		&contact.MiddleNames, &contact.DateOfBirth, &overEighteen, &contact.IsStaff,
		&contact.Suspended, &contact.DeceasedDate, &contact.GenderCode,
		&contact.DomesticStatusCode, &contact.LanguageCode, &contact.NationalityCode,
		&contact.InterpreterRequired, &contact.CreatedBy, &contact.CreatedTime,
		&contact.UpdatedBy, &contact.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	contact.EstimatedIsOverEighteen = models.EstimatedIsOverEighteen(overEighteen)
	return &contact, nil
}

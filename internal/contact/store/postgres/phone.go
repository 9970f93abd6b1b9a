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

type PhoneStore struct {
	db *sql.DB
}

func NewPhoneStore(db *sql.DB) *PhoneStore {
	return &PhoneStore{db: db}
}

const phoneColumns = `id, contact_id, phone_type_code, phone_number, ext_number,
	created_by, created_time, updated_by, updated_time`

func (s *PhoneStore) Save(ctx context.Context, phone *models.ContactPhone) error {
	if phone.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_phones
				(contact_id, phone_type_code, phone_number, ext_number, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			phone.ContactID, phone.PhoneTypeCode, phone.PhoneNumber, phone.ExtNumber,
			phone.CreatedBy, phone.CreatedTime)
		if err := row.Scan(&phone.ID); err != nil {
			return fmt.Errorf("insert contact phone: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_phones
		SET phone_type_code = $1, phone_number = $2, ext_number = $3,
			updated_by = $4, updated_time = $5
		WHERE id = $6`,
		phone.PhoneTypeCode, phone.PhoneNumber, phone.ExtNumber,
		phone.UpdatedBy, phone.UpdatedTime, phone.ID)
	if err != nil {
		return fmt.Errorf("update contact phone: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *PhoneStore) FindByID(ctx context.Context, phoneID id.ContactPhoneID) (*models.ContactPhone, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+phoneColumns+` FROM contact_phones WHERE id = $1`, phoneID)
	return scanPhone(row)
}

func (s *PhoneStore) FindByContactAndID(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) (*models.ContactPhone, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+phoneColumns+` FROM contact_phones WHERE contact_id = $1 AND id = $2`,
		contactID, phoneID)
	return scanPhone(row)
}

func (s *PhoneStore) FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactPhone, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+phoneColumns+` FROM contact_phones WHERE contact_id = $1 ORDER BY id`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list contact phones: %w", err)
	}
	defer rows.Close()

	var phones []*models.ContactPhone
	for rows.Next() {
		phone, err := scanPhone(rows)
		if err != nil {
			return nil, err
		}
		phones = append(phones, phone)
	}
	return phones, rows.Err()
}

func (s *PhoneStore) DeleteByID(ctx context.Context, phoneID id.ContactPhoneID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_phones WHERE id = $1`, phoneID)
	if err != nil {
		return fmt.Errorf("delete contact phone: %w", writeErr(err))
	}
	return requireRow(result)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPhone(row scanner) (*models.ContactPhone, error) {
	var phone models.ContactPhone
	err := row.Scan(&phone.ID, &phone.ContactID, &phone.PhoneTypeCode, &phone.PhoneNumber,
		&phone.ExtNumber, &phone.CreatedBy, &phone.CreatedTime, &phone.UpdatedBy, &phone.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact phone: %w", err)
	}
	return &phone, nil
}

// requireRow maps a zero-row write to the store miss sentinel.
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

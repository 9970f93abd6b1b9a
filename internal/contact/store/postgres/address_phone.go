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

type AddressPhoneStore struct {
	db *sql.DB
}

func NewAddressPhoneStore(db *sql.DB) *AddressPhoneStore {
	return &AddressPhoneStore{db: db}
}

const addressPhoneColumns = `id, contact_id, contact_address_id, contact_phone_id,
	created_by, created_time, updated_by, updated_time`

func (s *AddressPhoneStore) Save(ctx context.Context, link *models.ContactAddressPhone) error {
	if link.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_address_phones
				(contact_id, contact_address_id, contact_phone_id, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			link.ContactID, link.AddressID, link.PhoneID, link.CreatedBy, link.CreatedTime)
		if err := row.Scan(&link.ID); err != nil {
			return fmt.Errorf("insert contact address phone: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_address_phones
		SET contact_phone_id = $1, updated_by = $2, updated_time = $3
		WHERE id = $4`,
		link.PhoneID, link.UpdatedBy, link.UpdatedTime, link.ID)
	if err != nil {
		return fmt.Errorf("update contact address phone: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *AddressPhoneStore) FindByID(ctx context.Context, linkID id.ContactAddressPhoneID) (*models.ContactAddressPhone, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+addressPhoneColumns+` FROM contact_address_phones WHERE id = $1`, linkID)
	return scanAddressPhone(row)
}

func (s *AddressPhoneStore) FindAllByAddress(ctx context.Context, addressID id.ContactAddressID) ([]*models.ContactAddressPhone, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+addressPhoneColumns+` FROM contact_address_phones WHERE contact_address_id = $1 ORDER BY id`,
		addressID)
	if err != nil {
		return nil, fmt.Errorf("list contact address phones: %w", err)
	}
	defer rows.Close()

	var links []*models.ContactAddressPhone
	for rows.Next() {
		link, err := scanAddressPhone(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (s *AddressPhoneStore) FindAllByPhone(ctx context.Context, phoneID id.ContactPhoneID) ([]*models.ContactAddressPhone, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+addressPhoneColumns+` FROM contact_address_phones WHERE contact_phone_id = $1 ORDER BY id`,
		phoneID)
	if err != nil {
		return nil, fmt.Errorf("list contact address phones: %w", err)
	}
	defer rows.Close()

	var links []*models.ContactAddressPhone
	for rows.Next() {
		link, err := scanAddressPhone(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (s *AddressPhoneStore) DeleteByID(ctx context.Context, linkID id.ContactAddressPhoneID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_address_phones WHERE id = $1`, linkID)
	if err != nil {
		return fmt.Errorf("delete contact address phone: %w", writeErr(err))
	}
	return requireRow(result)
}

func scanAddressPhone(row scanner) (*models.ContactAddressPhone, error) {
	var link models.ContactAddressPhone
	err := row.Scan(&link.ID, &link.ContactID, &link.AddressID, &link.PhoneID,
		&link.CreatedBy, &link.CreatedTime, &link.UpdatedBy, &link.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact address phone: %w", err)
	}
	return &link, nil
}

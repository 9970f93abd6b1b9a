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

type AddressStore struct {
	db *sql.DB
}

func NewAddressStore(db *sql.DB) *AddressStore {
	return &AddressStore{db: db}
}

const addressColumns = `id, contact_id, address_type, primary_address, flat, property, street,
	area, city_code, county_code, postcode, country_code, verified, verified_by, verified_time,
	mail_flag, no_fixed_address, comments, start_date, end_date,
	created_by, created_time, updated_by, updated_time`

func (s *AddressStore) Save(ctx context.Context, address *models.ContactAddress) error {
	if address.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_addresses
				(contact_id, address_type, primary_address, flat, property, street, area,
				 city_code, county_code, postcode, country_code, verified, verified_by,
				 verified_time, mail_flag, no_fixed_address, comments, start_date, end_date,
				 created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
				$17, $18, $19, $20, $21)
			RETURNING id`,
			address.ContactID, address.AddressType, address.Primary, address.Flat,
			address.Property, address.Street, address.Area, address.CityCode,
			address.CountyCode, address.Postcode, address.CountryCode, address.Verified,
			address.VerifiedBy, address.VerifiedTime, address.Mail, address.NoFixedAddress,
			address.Comments, address.StartDate, address.EndDate,
			address.CreatedBy, address.CreatedTime)
		if err := row.Scan(&address.ID); err != nil {
			return fmt.Errorf("insert contact address: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_addresses
		SET address_type = $1, primary_address = $2, flat = $3, property = $4, street = $5,
			area = $6, city_code = $7, county_code = $8, postcode = $9, country_code = $10,
			verified = $11, verified_by = $12, verified_time = $13, mail_flag = $14,
			no_fixed_address = $15, comments = $16, start_date = $17, end_date = $18,
			updated_by = $19, updated_time = $20
		WHERE id = $21`,
		address.AddressType, address.Primary, address.Flat, address.Property, address.Street,
		address.Area, address.CityCode, address.CountyCode, address.Postcode,
		address.CountryCode, address.Verified, address.VerifiedBy, address.VerifiedTime,
		address.Mail, address.NoFixedAddress, address.Comments, address.StartDate,
		address.EndDate, address.UpdatedBy, address.UpdatedTime, address.ID)
	if err != nil {
		return fmt.Errorf("update contact address: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *AddressStore) FindByContactAndID(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) (*models.ContactAddress, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM contact_addresses WHERE contact_id = $1 AND id = $2`,
		contactID, addressID)
	return scanAddress(row)
}

func (s *AddressStore) FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactAddress, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+addressColumns+` FROM contact_addresses WHERE contact_id = $1 ORDER BY id`,
		contactID)
	if err != nil {
		return nil, fmt.Errorf("list contact addresses: %w", err)
	}
	defer rows.Close()

	var addresses []*models.ContactAddress
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, rows.Err()
}

func (s *AddressStore) DeleteByID(ctx context.Context, addressID id.ContactAddressID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_addresses WHERE id = $1`, addressID)
	if err != nil {
		return fmt.Errorf("delete contact address: %w", writeErr(err))
	}
	return requireRow(result)
}

func scanAddress(row scanner) (*models.ContactAddress, error) {
	var address models.ContactAddress
	err := row.Scan(&address.ID, &address.ContactID, &address.AddressType, &address.Primary,
		&address.Flat, &address.Property, &address.Street, &address.Area, &address.CityCode,
		&address.CountyCode, &address.Postcode, &address.CountryCode, &address.Verified,
		&address.VerifiedBy, &address.VerifiedTime, &address.Mail, &address.NoFixedAddress,
		&address.Comments, &address.StartDate, &address.EndDate,
		&address.CreatedBy, &address.CreatedTime, &address.UpdatedBy, &address.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact address: %w", err)
	}
	return &address, nil
}

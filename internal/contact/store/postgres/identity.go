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

type IdentityStore struct {
	db *sql.DB
}

func NewIdentityStore(db *sql.DB) *IdentityStore {
	return &IdentityStore{db: db}
}

const identityColumns = `id, contact_id, identity_type_code, identity_value, issuing_authority,
	created_by, created_time, updated_by, updated_time`

func (s *IdentityStore) Save(ctx context.Context, identity *models.ContactIdentity) error {
	if identity.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_identities
				(contact_id, identity_type_code, identity_value, issuing_authority, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			identity.ContactID, identity.IdentityTypeCode, identity.IdentityValue,
			identity.IssuingAuthority, identity.CreatedBy, identity.CreatedTime)
		if err := row.Scan(&identity.ID); err != nil {
			return fmt.Errorf("insert contact identity: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_identities
		SET identity_type_code = $1, identity_value = $2, issuing_authority = $3,
			updated_by = $4, updated_time = $5
		WHERE id = $6`,
		identity.IdentityTypeCode, identity.IdentityValue, identity.IssuingAuthority,
		identity.UpdatedBy, identity.UpdatedTime, identity.ID)
	if err != nil {
		return fmt.Errorf("update contact identity: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *IdentityStore) FindByContactAndID(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) (*models.ContactIdentity, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM contact_identities WHERE contact_id = $1 AND id = $2`,
		contactID, identityID)
	return scanIdentity(row)
}

func (s *IdentityStore) FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactIdentity, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+identityColumns+` FROM contact_identities WHERE contact_id = $1 ORDER BY id`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list contact identities: %w", err)
	}
	defer rows.Close()

	var identities []*models.ContactIdentity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, rows.Err()
}

func (s *IdentityStore) DeleteByID(ctx context.Context, identityID id.ContactIdentityID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_identities WHERE id = $1`, identityID)
	if err != nil {
		return fmt.Errorf("delete contact identity: %w", writeErr(err))
	}
	return requireRow(result)
}

func scanIdentity(row scanner) (*models.ContactIdentity, error) {
	var identity models.ContactIdentity
	err := row.Scan(&identity.ID, &identity.ContactID, &identity.IdentityTypeCode,
		&identity.IdentityValue, &identity.IssuingAuthority,
		&identity.CreatedBy, &identity.CreatedTime, &identity.UpdatedBy, &identity.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact identity: %w", err)
	}
	return &identity, nil
}

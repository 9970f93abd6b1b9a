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

type RestrictionStore struct {
	db *sql.DB
}

func NewRestrictionStore(db *sql.DB) *RestrictionStore {
	return &RestrictionStore{db: db}
}

const restrictionColumns = `id, contact_id, restriction_type_code, start_date, expiry_date,
	comments, entered_by_username, created_by, created_time, updated_by, updated_time`

func (s *RestrictionStore) Save(ctx context.Context, restriction *models.ContactRestriction) error {
	if restriction.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_restrictions
				(contact_id, restriction_type_code, start_date, expiry_date, comments,
				 entered_by_username, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			restriction.ContactID, restriction.RestrictionTypeCode, restriction.StartDate,
			restriction.ExpiryDate, restriction.Comments, restriction.StaffUsername,
			restriction.CreatedBy, restriction.CreatedTime)
		if err := row.Scan(&restriction.ID); err != nil {
			return fmt.Errorf("insert contact restriction: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_restrictions
		SET restriction_type_code = $1, start_date = $2, expiry_date = $3, comments = $4,
			entered_by_username = $5, updated_by = $6, updated_time = $7
		WHERE id = $8`,
		restriction.RestrictionTypeCode, restriction.StartDate, restriction.ExpiryDate,
		restriction.Comments, restriction.StaffUsername,
		restriction.UpdatedBy, restriction.UpdatedTime, restriction.ID)
	if err != nil {
		return fmt.Errorf("update contact restriction: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *RestrictionStore) FindByContactAndID(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) (*models.ContactRestriction, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+restrictionColumns+` FROM contact_restrictions WHERE contact_id = $1 AND id = $2`,
		contactID, restrictionID)
	return scanRestriction(row)
}

func (s *RestrictionStore) FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactRestriction, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+restrictionColumns+` FROM contact_restrictions WHERE contact_id = $1 ORDER BY id`,
		contactID)
	if err != nil {
		return nil, fmt.Errorf("list contact restrictions: %w", err)
	}
	defer rows.Close()

	var restrictions []*models.ContactRestriction
	for rows.Next() {
		restriction, err := scanRestriction(rows)
		if err != nil {
			return nil, err
		}
		restrictions = append(restrictions, restriction)
	}
	return restrictions, rows.Err()
}

func (s *RestrictionStore) DeleteByID(ctx context.Context, restrictionID id.ContactRestrictionID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_restrictions WHERE id = $1`, restrictionID)
	if err != nil {
		return fmt.Errorf("delete contact restriction: %w", writeErr(err))
	}
	return requireRow(result)
}

func scanRestriction(row scanner) (*models.ContactRestriction, error) {
	var restriction models.ContactRestriction
	err := row.Scan(&restriction.ID, &restriction.ContactID, &restriction.RestrictionTypeCode,
		&restriction.StartDate, &restriction.ExpiryDate, &restriction.Comments,
		&restriction.StaffUsername, &restriction.CreatedBy, &restriction.CreatedTime,
		&restriction.UpdatedBy, &restriction.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact restriction: %w", err)
	}
	return &restriction, nil
}

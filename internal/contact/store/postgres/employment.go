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

type EmploymentStore struct {
	db *sql.DB
}

func NewEmploymentStore(db *sql.DB) *EmploymentStore {
	return &EmploymentStore{db: db}
}

const employmentColumns = `id, contact_id, organisation_id, active,
	created_by, created_time, updated_by, updated_time`

func (s *EmploymentStore) Save(ctx context.Context, employment *models.Employment) error {
	if employment.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_employments (contact_id, organisation_id, active, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			employment.ContactID, employment.OrganisationID, employment.Active,
			employment.CreatedBy, employment.CreatedTime)
		if err := row.Scan(&employment.ID); err != nil {
			return fmt.Errorf("insert employment: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_employments
		SET organisation_id = $1, active = $2, updated_by = $3, updated_time = $4
		WHERE id = $5`,
		employment.OrganisationID, employment.Active,
		employment.UpdatedBy, employment.UpdatedTime, employment.ID)
	if err != nil {
		return fmt.Errorf("update employment: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *EmploymentStore) FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.Employment, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+employmentColumns+` FROM contact_employments WHERE contact_id = $1 ORDER BY id`,
		contactID)
	if err != nil {
		return nil, fmt.Errorf("list employments: %w", err)
	}
	defer rows.Close()

	var employments []*models.Employment
	for rows.Next() {
		var employment models.Employment
		err := rows.Scan(&employment.ID, &employment.ContactID, &employment.OrganisationID,
			&employment.Active, &employment.CreatedBy, &employment.CreatedTime,
			&employment.UpdatedBy, &employment.UpdatedTime)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, sentinel.ErrNotFound
			}
			return nil, fmt.Errorf("scan employment: %w", err)
		}
		employments = append(employments, &employment)
	}
	return employments, rows.Err()
}

func (s *EmploymentStore) DeleteByID(ctx context.Context, employmentID id.EmploymentID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_employments WHERE id = $1`, employmentID)
	if err != nil {
		return fmt.Errorf("delete employment: %w", writeErr(err))
	}
	return requireRow(result)
}

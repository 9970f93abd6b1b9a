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

type EmailStore struct {
	db *sql.DB
}

func NewEmailStore(db *sql.DB) *EmailStore {
	return &EmailStore{db: db}
}

const emailColumns = `id, contact_id, email_address, created_by, created_time, updated_by, updated_time`

func (s *EmailStore) Save(ctx context.Context, email *models.ContactEmail) error {
	if email.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO contact_emails (contact_id, email_address, created_by, created_time)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			email.ContactID, email.EmailAddress, email.CreatedBy, email.CreatedTime)
		if err := row.Scan(&email.ID); err != nil {
			return fmt.Errorf("insert contact email: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE contact_emails
		SET email_address = $1, updated_by = $2, updated_time = $3
		WHERE id = $4`,
		email.EmailAddress, email.UpdatedBy, email.UpdatedTime, email.ID)
	if err != nil {
		return fmt.Errorf("update contact email: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *EmailStore) FindByContactAndID(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) (*models.ContactEmail, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+emailColumns+` FROM contact_emails WHERE contact_id = $1 AND id = $2`,
		contactID, emailID)
	return scanEmail(row)
}

func (s *EmailStore) FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactEmail, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+emailColumns+` FROM contact_emails WHERE contact_id = $1 ORDER BY id`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list contact emails: %w", err)
	}
	defer rows.Close()

	var emails []*models.ContactEmail
	for rows.Next() {
		email, err := scanEmail(rows)
		if err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (s *EmailStore) DeleteByID(ctx context.Context, emailID id.ContactEmailID) error {
	result, err := q(ctx, s.db).ExecContext(ctx, `DELETE FROM contact_emails WHERE id = $1`, emailID)
	if err != nil {
		return fmt.Errorf("delete contact email: %w", writeErr(err))
	}
	return requireRow(result)
}

func scanEmail(row scanner) (*models.ContactEmail, error) {
	var email models.ContactEmail
	err := row.Scan(&email.ID, &email.ContactID, &email.EmailAddress,
		&email.CreatedBy, &email.CreatedTime, &email.UpdatedBy, &email.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact email: %w", err)
	}
	return &email, nil
}

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

type PrisonerContactStore struct {
	db *sql.DB
}

func NewPrisonerContactStore(db *sql.DB) *PrisonerContactStore {
	return &PrisonerContactStore{db: db}
}

const prisonerContactColumns = `id, contact_id, prisoner_number, relationship_type_code,
	active, approved_visitor, next_of_kin, emergency_contact, comments,
	created_by, created_time, updated_by, updated_time`

func (s *PrisonerContactStore) Save(ctx context.Context, relationship *models.PrisonerContact) error {
	if relationship.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO prisoner_contacts
				(contact_id, prisoner_number, relationship_type_code, active, approved_visitor,
				 next_of_kin, emergency_contact, comments, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`,
			relationship.ContactID, relationship.PrisonerNumber, relationship.RelationshipTypeCode,
			relationship.Active, relationship.ApprovedVisitor, relationship.NextOfKin,
			relationship.EmergencyContact, relationship.Comments,
			relationship.CreatedBy, relationship.CreatedTime)
		if err := row.Scan(&relationship.ID); err != nil {
			return fmt.Errorf("insert prisoner contact: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE prisoner_contacts
		SET relationship_type_code = $1, active = $2, approved_visitor = $3, next_of_kin = $4,
			emergency_contact = $5, comments = $6, updated_by = $7, updated_time = $8
		WHERE id = $9`,
		relationship.RelationshipTypeCode, relationship.Active, relationship.ApprovedVisitor,
		relationship.NextOfKin, relationship.EmergencyContact, relationship.Comments,
		relationship.UpdatedBy, relationship.UpdatedTime, relationship.ID)
	if err != nil {
		return fmt.Errorf("update prisoner contact: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *PrisonerContactStore) FindByID(ctx context.Context, relationshipID id.PrisonerContactID) (*models.PrisonerContact, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+prisonerContactColumns+` FROM prisoner_contacts WHERE id = $1`, relationshipID)
	return scanPrisonerContact(row)
}

func (s *PrisonerContactStore) FindAllByPrisoner(ctx context.Context, prisonerNumber string) ([]*models.PrisonerContact, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+prisonerContactColumns+` FROM prisoner_contacts WHERE prisoner_number = $1 ORDER BY id`,
		prisonerNumber)
	if err != nil {
		return nil, fmt.Errorf("list prisoner contacts: %w", err)
	}
	defer rows.Close()

	var relationships []*models.PrisonerContact
	for rows.Next() {
		relationship, err := scanPrisonerContact(rows)
		if err != nil {
			return nil, err
		}
		relationships = append(relationships, relationship)
	}
	return relationships, rows.Err()
}

func scanPrisonerContact(row scanner) (*models.PrisonerContact, error) {
	var relationship models.PrisonerContact
	err := row.Scan(&relationship.ID, &relationship.ContactID, &relationship.PrisonerNumber,
		&relationship.RelationshipTypeCode, &relationship.Active, &relationship.ApprovedVisitor,
		&relationship.NextOfKin, &relationship.EmergencyContact, &relationship.Comments,
		&relationship.CreatedBy, &relationship.CreatedTime,
		&relationship.UpdatedBy, &relationship.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan prisoner contact: %w", err)
	}
	return &relationship, nil
}

// PrisonerContactRestrictionStore persists relationship-scoped restrictions.
type PrisonerContactRestrictionStore struct {
	db *sql.DB
}

func NewPrisonerContactRestrictionStore(db *sql.DB) *PrisonerContactRestrictionStore {
	return &PrisonerContactRestrictionStore{db: db}
}

const prisonerRestrictionColumns = `id, prisoner_contact_id, restriction_type_code, start_date,
	expiry_date, comments, entered_by_username, created_by, created_time, updated_by, updated_time`

func (s *PrisonerContactRestrictionStore) Save(ctx context.Context, restriction *models.PrisonerContactRestriction) error {
	if restriction.ID == 0 {
		row := q(ctx, s.db).QueryRowContext(ctx, `
			INSERT INTO prisoner_contact_restrictions
				(prisoner_contact_id, restriction_type_code, start_date, expiry_date, comments,
				 entered_by_username, created_by, created_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			restriction.PrisonerContactID, restriction.RestrictionTypeCode, restriction.StartDate,
			restriction.ExpiryDate, restriction.Comments, restriction.StaffUsername,
			restriction.CreatedBy, restriction.CreatedTime)
		if err := row.Scan(&restriction.ID); err != nil {
			return fmt.Errorf("insert prisoner contact restriction: %w", writeErr(err))
		}
		return nil
	}

	result, err := q(ctx, s.db).ExecContext(ctx, `
		UPDATE prisoner_contact_restrictions
		SET restriction_type_code = $1, start_date = $2, expiry_date = $3, comments = $4,
			entered_by_username = $5, updated_by = $6, updated_time = $7
		WHERE id = $8`,
		restriction.RestrictionTypeCode, restriction.StartDate, restriction.ExpiryDate,
		restriction.Comments, restriction.StaffUsername,
		restriction.UpdatedBy, restriction.UpdatedTime, restriction.ID)
	if err != nil {
		return fmt.Errorf("update prisoner contact restriction: %w", writeErr(err))
	}
	return requireRow(result)
}

func (s *PrisonerContactRestrictionStore) FindByRelationshipAndID(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) (*models.PrisonerContactRestriction, error) {
	row := q(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+prisonerRestrictionColumns+` FROM prisoner_contact_restrictions
		 WHERE prisoner_contact_id = $1 AND id = $2`,
		relationshipID, restrictionID)
	return scanPrisonerRestriction(row)
}

func (s *PrisonerContactRestrictionStore) FindAllByRelationship(ctx context.Context, relationshipID id.PrisonerContactID) ([]*models.PrisonerContactRestriction, error) {
	rows, err := q(ctx, s.db).QueryContext(ctx,
		`SELECT `+prisonerRestrictionColumns+` FROM prisoner_contact_restrictions
		 WHERE prisoner_contact_id = $1 ORDER BY id`,
		relationshipID)
	if err != nil {
		return nil, fmt.Errorf("list prisoner contact restrictions: %w", err)
	}
	defer rows.Close()

	var restrictions []*models.PrisonerContactRestriction
	for rows.Next() {
		restriction, err := scanPrisonerRestriction(rows)
		if err != nil {
			return nil, err
		}
		restrictions = append(restrictions, restriction)
	}
	return restrictions, rows.Err()
}

func (s *PrisonerContactRestrictionStore) DeleteByID(ctx context.Context, restrictionID id.PrisonerContactRestrictionID) error {
	result, err := q(ctx, s.db).ExecContext(ctx,
		`DELETE FROM prisoner_contact_restrictions WHERE id = $1`, restrictionID)
	if err != nil {
		return fmt.Errorf("delete prisoner contact restriction: %w", writeErr(err))
	}
	return requireRow(result)
}

func scanPrisonerRestriction(row scanner) (*models.PrisonerContactRestriction, error) {
	var restriction models.PrisonerContactRestriction
	err := row.Scan(&restriction.ID, &restriction.PrisonerContactID,
		&restriction.RestrictionTypeCode, &restriction.StartDate, &restriction.ExpiryDate,
		&restriction.Comments, &restriction.StaffUsername,
		&restriction.CreatedBy, &restriction.CreatedTime,
		&restriction.UpdatedBy, &restriction.UpdatedTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan prisoner contact restriction: %w", err)
	}
	return &restriction, nil
}

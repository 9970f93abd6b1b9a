package models

import (
	"time"

	id "contactregistry/pkg/domain"
)

// PrisonerContact is the relationship record between one prisoner and one
// contact. Restrictions scoped to the pairing hang off this row rather than
// the contact.
type PrisonerContact struct {
	ID                   id.PrisonerContactID `json:"id"`
	ContactID            id.ContactID         `json:"contact_id"`
	PrisonerNumber       string               `json:"prisoner_number"`
	RelationshipTypeCode string               `json:"relationship_type_code"`
	Active               bool                 `json:"active"`
	ApprovedVisitor      bool                 `json:"approved_visitor"`
	NextOfKin            bool                 `json:"next_of_kin"`
	EmergencyContact     bool                 `json:"emergency_contact"`
	Comments             string               `json:"comments,omitempty"`
	Audit
}

// PrisonerContactRestriction restricts a specific prisoner-contact
// relationship. Date ordering follows the same rule as contact restrictions.
type PrisonerContactRestriction struct {
	ID                  id.PrisonerContactRestrictionID `json:"id"`
	PrisonerContactID   id.PrisonerContactID            `json:"prisoner_contact_id"`
	RestrictionTypeCode string                          `json:"restriction_type_code"`
	StartDate           *time.Time                      `json:"start_date,omitempty"`
	ExpiryDate          *time.Time                      `json:"expiry_date,omitempty"`
	Comments            string                          `json:"comments,omitempty"`
	StaffUsername       string                          `json:"entered_by_username"`
	Audit
}

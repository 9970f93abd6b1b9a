package models

import (
	id "contactregistry/pkg/domain"
)

// Employment links a contact to an organisation. The organisation is
// referenced by id and resolved to a summary on read, never embedded.
type Employment struct {
	ID             id.EmploymentID   `json:"id"`
	ContactID      id.ContactID      `json:"contact_id"`
	OrganisationID id.OrganisationID `json:"organisation_id"`
	Active         bool              `json:"active"`
	Audit
}

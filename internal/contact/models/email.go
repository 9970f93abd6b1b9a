package models

import (
	id "contactregistry/pkg/domain"
)

// ContactEmail is an email address owned by a contact.
type ContactEmail struct {
	ID           id.ContactEmailID `json:"id"`
	ContactID    id.ContactID      `json:"contact_id"`
	EmailAddress string            `json:"email_address"`
	Audit
}

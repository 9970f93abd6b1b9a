// Package events publishes domain events after successful mutations so
// downstream consumers (sync, search indexing) can react. The registry is the
// source of truth; events are notifications, not commands.
package events

import (
	"time"
)

// Type names a domain event.
type Type string

const (
	TypeContactCreated      Type = "contact.created"
	TypeContactUpdated      Type = "contact.updated"
	TypeAddressCreated      Type = "contact-address.created"
	TypeAddressUpdated      Type = "contact-address.updated"
	TypeAddressDeleted      Type = "contact-address.deleted"
	TypePhoneCreated        Type = "contact-phone.created"
	TypePhoneUpdated        Type = "contact-phone.updated"
	TypePhoneDeleted        Type = "contact-phone.deleted"
	TypeAddressPhoneCreated Type = "contact-address-phone.created"
	TypeAddressPhoneUpdated Type = "contact-address-phone.updated"
	TypeAddressPhoneDeleted Type = "contact-address-phone.deleted"
	TypeEmailCreated        Type = "contact-email.created"
	TypeEmailUpdated        Type = "contact-email.updated"
	TypeEmailDeleted        Type = "contact-email.deleted"
	TypeIdentityCreated     Type = "contact-identity.created"
	TypeIdentityUpdated     Type = "contact-identity.updated"
	TypeIdentityDeleted     Type = "contact-identity.deleted"
	TypeRestrictionCreated  Type = "contact-restriction.created"
	TypeRestrictionUpdated  Type = "contact-restriction.updated"
	TypeRestrictionDeleted  Type = "contact-restriction.deleted"
	TypeEmploymentsPatched  Type = "contact-employments.patched"
)

// Event is the payload published for every mutation. The id slices are only
// populated for the employment patch, which reports everything it touched in
// one event.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Username   string    `json:"username"`
	ContactID  int64     `json:"contact_id"`
	EntityID   int64     `json:"entity_id,omitempty"`
	CreatedIDs []int64   `json:"created_ids,omitempty"`
	UpdatedIDs []int64   `json:"updated_ids,omitempty"`
	DeletedIDs []int64   `json:"deleted_ids,omitempty"`
}

package models

import (
	id "contactregistry/pkg/domain"
)

// ContactPhone is a phone number row. It is owned directly by a contact, or
// referenced indirectly through a ContactAddressPhone link.
type ContactPhone struct {
	ID            id.ContactPhoneID `json:"id"`
	ContactID     id.ContactID      `json:"contact_id"`
	PhoneTypeCode string            `json:"phone_type_code"`
	PhoneNumber   string            `json:"phone_number"`
	ExtNumber     string            `json:"ext_number,omitempty"`
	Audit
}

// ContactAddressPhone is the link row binding one ContactPhone to one
// ContactAddress. It is not a phone number in its own right.
//
// Invariant: every link row has exactly one corresponding phone row, created
// and destroyed in lockstep. An address-specific phone number always
// manifests as these two rows sharing one lifecycle; the service layer is the
// only writer and treats the pair as a single value.
type ContactAddressPhone struct {
	ID        id.ContactAddressPhoneID `json:"id"`
	ContactID id.ContactID             `json:"contact_id"`
	AddressID id.ContactAddressID      `json:"contact_address_id"`
	PhoneID   id.ContactPhoneID        `json:"contact_phone_id"`
	Audit
}

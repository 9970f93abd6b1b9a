package models

import (
	id "contactregistry/pkg/domain"
)

// ContactIdentity is an identity document held against a contact, e.g. a
// driving licence or passport number. The type is a reference code.
type ContactIdentity struct {
	ID               id.ContactIdentityID `json:"id"`
	ContactID        id.ContactID         `json:"contact_id"`
	IdentityTypeCode string               `json:"identity_type_code"`
	IdentityValue    string               `json:"identity_value"`
	IssuingAuthority string               `json:"issuing_authority,omitempty"`
	Audit
}

// Package domain defines the typed identifiers shared across the registry.
//
// Identifiers are int64 values assigned by the backing store (sequences), not
// UUIDs: contact and sub-entity ids are exchanged with an external offender
// management system that speaks numeric ids.
package domain

// ContactID identifies a contact (person or organisation) in the registry.
type ContactID int64

// ContactAddressID identifies a postal address owned by a contact.
type ContactAddressID int64

// ContactPhoneID identifies a phone number row. A phone row is owned directly
// by a contact or referenced through a ContactAddressPhoneID link.
type ContactPhoneID int64

// ContactAddressPhoneID identifies the link row binding one phone row to one
// address row.
type ContactAddressPhoneID int64

// ContactEmailID identifies an email address owned by a contact.
type ContactEmailID int64

// ContactIdentityID identifies an identity document owned by a contact.
type ContactIdentityID int64

// ContactRestrictionID identifies an estate-wide restriction on a contact.
type ContactRestrictionID int64

// EmploymentID identifies an employment linking a contact to an organisation.
type EmploymentID int64

// OrganisationID identifies an organisation in the organisation registry.
type OrganisationID int64

// PrisonerContactID identifies a prisoner-contact relationship record.
type PrisonerContactID int64

// PrisonerContactRestrictionID identifies a restriction scoped to a single
// prisoner-contact relationship.
type PrisonerContactRestrictionID int64

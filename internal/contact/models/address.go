package models

import (
	"time"

	id "contactregistry/pkg/domain"
)

// ContactAddress is one postal address for a contact. City, county and
// country are codes into the reference catalogues.
//
// At most one address per contact should carry Primary, but this is a
// convention rather than a structural constraint: the service clears the flag
// on sibling addresses when a new primary is written, in the same
// transaction.
type ContactAddress struct {
	ID             id.ContactAddressID `json:"id"`
	ContactID      id.ContactID        `json:"contact_id"`
	AddressType    string              `json:"address_type,omitempty"`
	Primary        bool                `json:"primary_address"`
	Flat           string              `json:"flat,omitempty"`
	Property       string              `json:"property,omitempty"`
	Street         string              `json:"street,omitempty"`
	Area           string              `json:"area,omitempty"`
	CityCode       string              `json:"city_code,omitempty"`
	CountyCode     string              `json:"county_code,omitempty"`
	Postcode       string              `json:"postcode,omitempty"`
	CountryCode    string              `json:"country_code,omitempty"`
	Verified       bool                `json:"verified"`
	VerifiedBy     string              `json:"verified_by,omitempty"`
	VerifiedTime   *time.Time          `json:"verified_time,omitempty"`
	Mail           bool                `json:"mail_flag"`
	NoFixedAddress bool                `json:"no_fixed_address"`
	Comments       string              `json:"comments,omitempty"`
	StartDate      *time.Time          `json:"start_date,omitempty"`
	EndDate        *time.Time          `json:"end_date,omitempty"`
	Audit
}

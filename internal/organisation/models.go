// Package organisation exposes the organisation registry as a read-only
// collaborator. Employments reference organisations by id and are decorated
// with a summary on read; this core never mutates organisation data.
package organisation

import (
	id "contactregistry/pkg/domain"
)

// Summary is the snapshot joined onto employment detail views: the
// organisation's name and active flag, its primary address, and its business
// phone number.
type Summary struct {
	OrganisationID         id.OrganisationID `json:"organisation_id"`
	Name                   string            `json:"organisation_name"`
	Active                 bool              `json:"organisation_active"`
	Flat                   string            `json:"flat,omitempty"`
	Property               string            `json:"property,omitempty"`
	Street                 string            `json:"street,omitempty"`
	Area                   string            `json:"area,omitempty"`
	CityCode               string            `json:"city_code,omitempty"`
	CityDescription        string            `json:"city_description,omitempty"`
	CountyCode             string            `json:"county_code,omitempty"`
	CountyDescription      string            `json:"county_description,omitempty"`
	Postcode               string            `json:"postcode,omitempty"`
	CountryCode            string            `json:"country_code,omitempty"`
	CountryDescription     string            `json:"country_description,omitempty"`
	BusinessPhoneNumber    string            `json:"business_phone_number,omitempty"`
	BusinessPhoneExtension string            `json:"business_phone_extension,omitempty"`
}

package service

import (
	"context"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/organisation"
	"contactregistry/internal/referencedata"
)

// Detail views join the stored row with reference-code descriptions. Rows
// store only codes; descriptions are resolved at read time so a catalogue
// update is reflected without touching the rows.

type ContactDetails struct {
	models.Contact
	TitleDescription          string `json:"title_description,omitempty"`
	GenderDescription         string `json:"gender_description,omitempty"`
	DomesticStatusDescription string `json:"domestic_status_description,omitempty"`
	LanguageDescription       string `json:"language_description,omitempty"`
	NationalityDescription    string `json:"nationality_description,omitempty"`
}

type PhoneDetails struct {
	models.ContactPhone
	PhoneTypeDescription string `json:"phone_type_description,omitempty"`
}

// AddressPhoneDetails presents the address-phone pair as one value: the link
// id for addressing the pair, plus the phone fields callers actually want.
type AddressPhoneDetails struct {
	PhoneDetails
	LinkID    int64 `json:"contact_address_phone_id"`
	AddressID int64 `json:"contact_address_id"`
}

type AddressDetails struct {
	models.ContactAddress
	CityDescription    string                `json:"city_description,omitempty"`
	CountyDescription  string                `json:"county_description,omitempty"`
	CountryDescription string                `json:"country_description,omitempty"`
	Phones             []AddressPhoneDetails `json:"phone_numbers,omitempty"`
}

type IdentityDetails struct {
	models.ContactIdentity
	IdentityTypeDescription string `json:"identity_type_description,omitempty"`
}

type RestrictionDetails struct {
	models.ContactRestriction
	RestrictionTypeDescription string `json:"restriction_type_description,omitempty"`
}

// EmploymentDetails decorates an employment with the organisation summary.
// Organisation is nil when the organisation registry no longer knows the id;
// the employment row itself stays readable.
type EmploymentDetails struct {
	models.Employment
	Organisation *organisation.Summary `json:"organisation,omitempty"`
}

func (s *Service) phoneDetails(ctx context.Context, phone *models.ContactPhone) (*PhoneDetails, error) {
	description, err := s.refdata.Description(ctx, referencedata.GroupPhoneType, phone.PhoneTypeCode)
	if err != nil {
		return nil, err
	}
	return &PhoneDetails{ContactPhone: *phone, PhoneTypeDescription: description}, nil
}

func (s *Service) identityDetails(ctx context.Context, identity *models.ContactIdentity) (*IdentityDetails, error) {
	description, err := s.refdata.Description(ctx, referencedata.GroupIdentityType, identity.IdentityTypeCode)
	if err != nil {
		return nil, err
	}
	return &IdentityDetails{ContactIdentity: *identity, IdentityTypeDescription: description}, nil
}

func (s *Service) restrictionDetails(ctx context.Context, restriction *models.ContactRestriction) (*RestrictionDetails, error) {
	description, err := s.refdata.Description(ctx, referencedata.GroupRestrictionType, restriction.RestrictionTypeCode)
	if err != nil {
		return nil, err
	}
	return &RestrictionDetails{ContactRestriction: *restriction, RestrictionTypeDescription: description}, nil
}

func (s *Service) addressDetails(ctx context.Context, address *models.ContactAddress) (*AddressDetails, error) {
	details := &AddressDetails{ContactAddress: *address}
	var err error
	if details.CityDescription, err = s.refdata.Description(ctx, referencedata.GroupCity, address.CityCode); err != nil {
		return nil, err
	}
	if details.CountyDescription, err = s.refdata.Description(ctx, referencedata.GroupCounty, address.CountyCode); err != nil {
		return nil, err
	}
	if details.CountryDescription, err = s.refdata.Description(ctx, referencedata.GroupCountry, address.CountryCode); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *Service) contactDetails(ctx context.Context, contact *models.Contact) (*ContactDetails, error) {
	details := &ContactDetails{Contact: *contact}
	var err error
	if details.TitleDescription, err = s.refdata.Description(ctx, referencedata.GroupTitle, contact.TitleCode); err != nil {
		return nil, err
	}
	if details.GenderDescription, err = s.refdata.Description(ctx, referencedata.GroupGender, contact.GenderCode); err != nil {
		return nil, err
	}
	if details.DomesticStatusDescription, err = s.refdata.Description(ctx, referencedata.GroupDomesticStatus, contact.DomesticStatusCode); err != nil {
		return nil, err
	}
	if details.LanguageDescription, err = s.refdata.Description(ctx, referencedata.GroupLanguage, contact.LanguageCode); err != nil {
		return nil, err
	}
	if details.NationalityDescription, err = s.refdata.Description(ctx, referencedata.GroupNationality, contact.NationalityCode); err != nil {
		return nil, err
	}
	return details, nil
}

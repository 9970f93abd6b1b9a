package service

import (
	"context"
	"time"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/requestcontext"
)

type AddressRequest struct {
	AddressType    string     `json:"address_type,omitempty"`
	Primary        bool       `json:"primary_address"`
	Flat           string     `json:"flat,omitempty"`
	Property       string     `json:"property,omitempty"`
	Street         string     `json:"street,omitempty"`
	Area           string     `json:"area,omitempty"`
	CityCode       string     `json:"city_code,omitempty"`
	CountyCode     string     `json:"county_code,omitempty"`
	Postcode       string     `json:"postcode,omitempty"`
	CountryCode    string     `json:"country_code,omitempty"`
	Verified       bool       `json:"verified"`
	Mail           bool       `json:"mail_flag"`
	NoFixedAddress bool       `json:"no_fixed_address"`
	Comments       string     `json:"comments,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// CreateAddress adds a postal address to a contact. When the new address is
// marked primary, the flag is cleared on every sibling in the same
// transaction so the contact never ends up with two primaries.
func (s *Service) CreateAddress(ctx context.Context, contactID id.ContactID, req AddressRequest) (*AddressDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreateAddress")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	if err := s.validateAddressPayload(ctx, req, referencedata.CreationContext); err != nil {
		return nil, err
	}

	username := requestcontext.Username(ctx)
	now := requestcontext.Now(ctx)

	address := &models.ContactAddress{ContactID: contactID}
	applyAddressRequest(address, req)
	if req.Verified {
		address.VerifiedBy = username
		address.VerifiedTime = &now
	}
	address.StampCreate(username, now)

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if req.Primary {
			if err := s.clearPrimaryFlags(ctx, contactID, 0, username, now); err != nil {
				return err
			}
		}
		return s.stores.Addresses.Save(ctx, address)
	})
	if err != nil {
		return nil, wrapWrite(err, "failed to save contact address")
	}

	s.metrics.RecordWrite("address", "create")
	s.publish(ctx, events.TypeAddressCreated, contactID, int64(address.ID))
	return s.addressDetails(ctx, address)
}

// GetAddress returns one address with its location descriptions and any
// address-specific phone numbers.
func (s *Service) GetAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) (*AddressDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetAddress")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	address, err := s.resolveAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	details, err := s.addressDetails(ctx, address)
	if err != nil {
		return nil, err
	}
	if details.Phones, err = s.addressPhones(ctx, address.ID); err != nil {
		return nil, err
	}
	return details, nil
}

// ListAddresses returns all of a contact's addresses.
func (s *Service) ListAddresses(ctx context.Context, contactID id.ContactID) ([]*AddressDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.ListAddresses")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	addresses, err := s.stores.Addresses.FindAllByContact(ctx, contactID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contact addresses")
	}
	details := make([]*AddressDetails, 0, len(addresses))
	for _, address := range addresses {
		d, err := s.addressDetails(ctx, address)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// UpdateAddress replaces an address's fields. Promoting an address to
// primary demotes its siblings in the same transaction. Verification is
// stamped only on the transition to verified; an already verified address
// keeps its original verifier.
func (s *Service) UpdateAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID, req AddressRequest) (*AddressDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdateAddress")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	address, err := s.resolveAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	if err := s.validateAddressPayload(ctx, req, referencedata.EditContext); err != nil {
		return nil, err
	}

	username := requestcontext.Username(ctx)
	now := requestcontext.Now(ctx)

	wasVerified := address.Verified
	applyAddressRequest(address, req)
	switch {
	case req.Verified && !wasVerified:
		address.VerifiedBy = username
		address.VerifiedTime = &now
	case !req.Verified:
		address.VerifiedBy = ""
		address.VerifiedTime = nil
	}
	address.StampUpdate(username, now)

	err = s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if req.Primary {
			if err := s.clearPrimaryFlags(ctx, contactID, address.ID, username, now); err != nil {
				return err
			}
		}
		return s.stores.Addresses.Save(ctx, address)
	})
	if err != nil {
		return nil, wrapWrite(err, "failed to update contact address")
	}

	s.metrics.RecordWrite("address", "update")
	s.publish(ctx, events.TypeAddressUpdated, contactID, int64(address.ID))
	return s.addressDetails(ctx, address)
}

// DeleteAddress removes an address and every address-phone pair attached to
// it, all in one transaction.
func (s *Service) DeleteAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) error {
	ctx, span := s.tracer.Start(ctx, "contact.DeleteAddress")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return err
	}
	address, err := s.resolveAddress(ctx, contactID, addressID)
	if err != nil {
		return err
	}
	links, err := s.stores.AddressPhones.FindAllByAddress(ctx, address.ID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list address phones")
	}

	err = s.runner.RunInTx(ctx, func(ctx context.Context) error {
		for _, link := range links {
			// Link first: the link row references the phone row.
			if err := s.stores.AddressPhones.DeleteByID(ctx, link.ID); err != nil {
				return err
			}
			if err := s.stores.Phones.DeleteByID(ctx, link.PhoneID); err != nil {
				return err
			}
		}
		return s.stores.Addresses.DeleteByID(ctx, address.ID)
	})
	if err != nil {
		return wrapWrite(err, "failed to delete contact address")
	}

	s.metrics.RecordWrite("address", "delete")
	s.publish(ctx, events.TypeAddressDeleted, contactID, int64(address.ID))
	return nil
}

// clearPrimaryFlags demotes every primary address of the contact except the
// one being written.
func (s *Service) clearPrimaryFlags(ctx context.Context, contactID id.ContactID, keep id.ContactAddressID, username string, now time.Time) error {
	siblings, err := s.stores.Addresses.FindAllByContact(ctx, contactID)
	if err != nil {
		return err
	}
	for _, sibling := range siblings {
		if sibling.ID == keep || !sibling.Primary {
			continue
		}
		sibling.Primary = false
		sibling.StampUpdate(username, now)
		if err := s.stores.Addresses.Save(ctx, sibling); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) addressPhones(ctx context.Context, addressID id.ContactAddressID) ([]AddressPhoneDetails, error) {
	links, err := s.stores.AddressPhones.FindAllByAddress(ctx, addressID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list address phones")
	}
	details := make([]AddressPhoneDetails, 0, len(links))
	for _, link := range links {
		phone, err := s.resolveLinkedPhone(ctx, link.PhoneID)
		if err != nil {
			return nil, err
		}
		d, err := s.addressPhoneDetails(ctx, link, phone)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *Service) validateAddressPayload(ctx context.Context, req AddressRequest, vc referencedata.ValidationContext) error {
	checks := []struct {
		group referencedata.Group
		code  string
		rule  string
	}{
		{referencedata.GroupCity, req.CityCode, "city"},
		{referencedata.GroupCounty, req.CountyCode, "county"},
		{referencedata.GroupCountry, req.CountryCode, "country"},
	}
	for _, check := range checks {
		if check.code == "" {
			continue
		}
		if _, err := s.refdata.Validate(ctx, check.group, check.code, vc); err != nil {
			s.metrics.RecordValidationFailure(check.rule)
			return err
		}
	}
	return nil
}

func applyAddressRequest(address *models.ContactAddress, req AddressRequest) {
	address.AddressType = req.AddressType
	address.Primary = req.Primary
	address.Flat = req.Flat
	address.Property = req.Property
	address.Street = req.Street
	address.Area = req.Area
	address.CityCode = req.CityCode
	address.CountyCode = req.CountyCode
	address.Postcode = req.Postcode
	address.CountryCode = req.CountryCode
	address.Verified = req.Verified
	address.Mail = req.Mail
	address.NoFixedAddress = req.NoFixedAddress
	address.Comments = req.Comments
	address.StartDate = req.StartDate
	address.EndDate = req.EndDate
}

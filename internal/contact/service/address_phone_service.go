package service

import (
	"context"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/requestcontext"
)

// An address-specific phone number is two rows sharing one lifecycle: the
// ContactPhone row holding the number and the ContactAddressPhone link row
// binding it to an address. Every path that touches the pair, including
// DeletePhone and DeleteAddress, writes both rows inside one transaction so a
// failure partway leaves no orphaned half.

// CreateAddressPhone creates the phone row and its link row in lockstep.
// Both carry identical audit metadata from this operation.
func (s *Service) CreateAddressPhone(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID, req PhoneRequest) (*AddressPhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreateAddressPhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	if _, err := s.resolveAddress(ctx, contactID, addressID); err != nil {
		return nil, err
	}
	if err := s.validatePhonePayload(ctx, req, referencedata.CreationContext); err != nil {
		return nil, err
	}

	username := requestcontext.Username(ctx)
	now := requestcontext.Now(ctx)

	phone := &models.ContactPhone{
		ContactID:     contactID,
		PhoneTypeCode: req.PhoneTypeCode,
		PhoneNumber:   req.PhoneNumber,
		ExtNumber:     req.ExtNumber,
	}
	phone.StampCreate(username, now)

	link := &models.ContactAddressPhone{
		ContactID: contactID,
		AddressID: addressID,
	}
	link.StampCreate(username, now)

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stores.Phones.Save(ctx, phone); err != nil {
			return err
		}
		link.PhoneID = phone.ID
		return s.stores.AddressPhones.Save(ctx, link)
	})
	if err != nil {
		return nil, wrapWrite(err, "failed to save address phone")
	}

	s.metrics.RecordWrite("address_phone", "create")
	s.publish(ctx, events.TypeAddressPhoneCreated, contactID, int64(link.ID))
	return s.addressPhoneDetails(ctx, link, phone)
}

// GetAddressPhone fetches the pair by the link row's id. A link whose phone
// row is missing is a consistency violation; it is still reported as a
// phone-specific miss so the caller learns which half is gone.
func (s *Service) GetAddressPhone(ctx context.Context, linkID id.ContactAddressPhoneID) (*AddressPhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetAddressPhone")
	defer span.End()

	link, err := s.resolveAddressPhone(ctx, linkID)
	if err != nil {
		return nil, err
	}
	phone, err := s.resolveLinkedPhone(ctx, link.PhoneID)
	if err != nil {
		return nil, err
	}
	return s.addressPhoneDetails(ctx, link, phone)
}

// UpdateAddressPhone replaces the phone half's fields. The link row does not
// change on update, so only the phone row is written and stamped.
func (s *Service) UpdateAddressPhone(ctx context.Context, contactID id.ContactID, linkID id.ContactAddressPhoneID, req PhoneRequest) (*AddressPhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdateAddressPhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	link, err := s.resolveAddressPhone(ctx, linkID)
	if err != nil {
		return nil, err
	}
	phone, err := s.resolveLinkedPhone(ctx, link.PhoneID)
	if err != nil {
		return nil, err
	}
	if err := s.validatePhonePayload(ctx, req, referencedata.EditContext); err != nil {
		return nil, err
	}

	phone.PhoneTypeCode = req.PhoneTypeCode
	phone.PhoneNumber = req.PhoneNumber
	phone.ExtNumber = req.ExtNumber
	phone.StampUpdate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Phones.Save(ctx, phone); err != nil {
		return nil, wrapWrite(err, "failed to update address phone")
	}

	s.metrics.RecordWrite("address_phone", "update")
	s.publish(ctx, events.TypeAddressPhoneUpdated, contactID, int64(link.ID))
	return s.addressPhoneDetails(ctx, link, phone)
}

// DeleteAddressPhone removes both halves of the pair. The chain is resolved
// fully before any delete, and the two deletes run in one transaction so
// neither an orphaned link nor an orphaned phone row can remain.
func (s *Service) DeleteAddressPhone(ctx context.Context, contactID id.ContactID, linkID id.ContactAddressPhoneID) error {
	ctx, span := s.tracer.Start(ctx, "contact.DeleteAddressPhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return err
	}
	link, err := s.resolveAddressPhone(ctx, linkID)
	if err != nil {
		return err
	}
	phone, err := s.resolveLinkedPhone(ctx, link.PhoneID)
	if err != nil {
		return err
	}

	err = s.runner.RunInTx(ctx, func(ctx context.Context) error {
		// Link first: the link row references the phone row.
		if err := s.stores.AddressPhones.DeleteByID(ctx, link.ID); err != nil {
			return err
		}
		return s.stores.Phones.DeleteByID(ctx, phone.ID)
	})
	if err != nil {
		return wrapWrite(err, "failed to delete address phone")
	}

	s.metrics.RecordWrite("address_phone", "delete")
	s.publish(ctx, events.TypeAddressPhoneDeleted, contactID, int64(link.ID))
	return nil
}

func (s *Service) addressPhoneDetails(ctx context.Context, link *models.ContactAddressPhone, phone *models.ContactPhone) (*AddressPhoneDetails, error) {
	phoneDetails, err := s.phoneDetails(ctx, phone)
	if err != nil {
		return nil, err
	}
	return &AddressPhoneDetails{
		PhoneDetails: *phoneDetails,
		LinkID:       int64(link.ID),
		AddressID:    int64(link.AddressID),
	}, nil
}

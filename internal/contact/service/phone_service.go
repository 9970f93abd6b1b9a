package service

import (
	"context"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/requestcontext"
	"contactregistry/pkg/validation"
)

// PhoneRequest carries the mutable fields of a general phone number. The same
// shape serves create and update.
type PhoneRequest struct {
	PhoneTypeCode string `json:"phone_type_code"`
	PhoneNumber   string `json:"phone_number"`
	ExtNumber     string `json:"ext_number,omitempty"`
}

// CreatePhone adds a general phone number to a contact. The contact must
// exist, the phone type must be an active reference code and the number must
// pass the character-set rule, in that order.
func (s *Service) CreatePhone(ctx context.Context, contactID id.ContactID, req PhoneRequest) (*PhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreatePhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	if err := s.validatePhonePayload(ctx, req, referencedata.CreationContext); err != nil {
		return nil, err
	}

	phone := &models.ContactPhone{
		ContactID:     contactID,
		PhoneTypeCode: req.PhoneTypeCode,
		PhoneNumber:   req.PhoneNumber,
		ExtNumber:     req.ExtNumber,
	}
	phone.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Phones.Save(ctx, phone); err != nil {
		return nil, wrapWrite(err, "failed to save contact phone")
	}

	s.metrics.RecordWrite("phone", "create")
	s.publish(ctx, events.TypePhoneCreated, contactID, int64(phone.ID))
	return s.phoneDetails(ctx, phone)
}

// GetPhone returns one general phone number with its type description.
func (s *Service) GetPhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) (*PhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetPhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	phone, err := s.resolvePhone(ctx, contactID, phoneID)
	if err != nil {
		return nil, err
	}
	return s.phoneDetails(ctx, phone)
}

// ListPhones returns all of a contact's general phone numbers.
func (s *Service) ListPhones(ctx context.Context, contactID id.ContactID) ([]*PhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.ListPhones")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	phones, err := s.stores.Phones.FindAllByContact(ctx, contactID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contact phones")
	}
	details := make([]*PhoneDetails, 0, len(phones))
	for _, phone := range phones {
		d, err := s.phoneDetails(ctx, phone)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// UpdatePhone replaces the mutable fields of a general phone number. The
// phone type may be a code that has since been deactivated.
func (s *Service) UpdatePhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID, req PhoneRequest) (*PhoneDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdatePhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	phone, err := s.resolvePhone(ctx, contactID, phoneID)
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
		return nil, wrapWrite(err, "failed to update contact phone")
	}

	s.metrics.RecordWrite("phone", "update")
	s.publish(ctx, events.TypePhoneUpdated, contactID, int64(phone.ID))
	return s.phoneDetails(ctx, phone)
}

// DeletePhone removes a phone number. A phone that is the number half of an
// address-phone pair takes its link rows with it, in one transaction, so no
// link can remain referencing a deleted phone.
func (s *Service) DeletePhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) error {
	ctx, span := s.tracer.Start(ctx, "contact.DeletePhone")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return err
	}
	phone, err := s.resolvePhone(ctx, contactID, phoneID)
	if err != nil {
		return err
	}
	links, err := s.stores.AddressPhones.FindAllByPhone(ctx, phone.ID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list address phones")
	}

	err = s.runner.RunInTx(ctx, func(ctx context.Context) error {
		for _, link := range links {
			if err := s.stores.AddressPhones.DeleteByID(ctx, link.ID); err != nil {
				return err
			}
		}
		return s.stores.Phones.DeleteByID(ctx, phone.ID)
	})
	if err != nil {
		return wrapWrite(err, "failed to delete contact phone")
	}

	s.metrics.RecordWrite("phone", "delete")
	s.publish(ctx, events.TypePhoneDeleted, contactID, int64(phone.ID))
	return nil
}

// validatePhonePayload runs the reference-code check before the format check
// so callers always see catalogue problems first.
func (s *Service) validatePhonePayload(ctx context.Context, req PhoneRequest, vc referencedata.ValidationContext) error {
	if _, err := s.refdata.Validate(ctx, referencedata.GroupPhoneType, req.PhoneTypeCode, vc); err != nil {
		s.metrics.RecordValidationFailure("phone_type")
		return err
	}
	if err := validation.PhoneNumber(req.PhoneNumber); err != nil {
		s.metrics.RecordValidationFailure("phone_number")
		return err
	}
	return nil
}

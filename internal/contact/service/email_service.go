package service

import (
	"context"
	"strings"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/platform/events"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/requestcontext"
	"contactregistry/pkg/validation"
)

type EmailRequest struct {
	EmailAddress string `json:"email_address"`
}

// CreateEmail adds an email address to a contact. The address must pass the
// format rule and must not duplicate another of the contact's addresses,
// compared case-insensitively.
func (s *Service) CreateEmail(ctx context.Context, contactID id.ContactID, req EmailRequest) (*models.ContactEmail, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreateEmail")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	if err := validation.EmailAddress(req.EmailAddress); err != nil {
		s.metrics.RecordValidationFailure("email_address")
		return nil, err
	}
	if err := s.rejectDuplicateEmail(ctx, contactID, req.EmailAddress, 0); err != nil {
		return nil, err
	}

	email := &models.ContactEmail{
		ContactID:    contactID,
		EmailAddress: req.EmailAddress,
	}
	email.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Emails.Save(ctx, email); err != nil {
		return nil, wrapWrite(err, "failed to save contact email")
	}

	s.metrics.RecordWrite("email", "create")
	s.publish(ctx, events.TypeEmailCreated, contactID, int64(email.ID))
	return email, nil
}

// GetEmail returns one email address.
func (s *Service) GetEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) (*models.ContactEmail, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetEmail")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	return s.resolveEmail(ctx, contactID, emailID)
}

// UpdateEmail replaces an email address, applying the same format and
// duplicate rules as create. The row being updated is excluded from the
// duplicate check so re-saving the same value is not a conflict.
func (s *Service) UpdateEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID, req EmailRequest) (*models.ContactEmail, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdateEmail")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	email, err := s.resolveEmail(ctx, contactID, emailID)
	if err != nil {
		return nil, err
	}
	if err := validation.EmailAddress(req.EmailAddress); err != nil {
		s.metrics.RecordValidationFailure("email_address")
		return nil, err
	}
	if err := s.rejectDuplicateEmail(ctx, contactID, req.EmailAddress, email.ID); err != nil {
		return nil, err
	}

	email.EmailAddress = req.EmailAddress
	email.StampUpdate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Emails.Save(ctx, email); err != nil {
		return nil, wrapWrite(err, "failed to update contact email")
	}

	s.metrics.RecordWrite("email", "update")
	s.publish(ctx, events.TypeEmailUpdated, contactID, int64(email.ID))
	return email, nil
}

// DeleteEmail removes an email address.
func (s *Service) DeleteEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) error {
	ctx, span := s.tracer.Start(ctx, "contact.DeleteEmail")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return err
	}
	email, err := s.resolveEmail(ctx, contactID, emailID)
	if err != nil {
		return err
	}
	if err := s.stores.Emails.DeleteByID(ctx, email.ID); err != nil {
		return wrapWrite(err, "failed to delete contact email")
	}

	s.metrics.RecordWrite("email", "delete")
	s.publish(ctx, events.TypeEmailDeleted, contactID, int64(email.ID))
	return nil
}

func (s *Service) rejectDuplicateEmail(ctx context.Context, contactID id.ContactID, address string, excludeID id.ContactEmailID) error {
	existing, err := s.stores.Emails.FindAllByContact(ctx, contactID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contact emails")
	}
	for _, email := range existing {
		if email.ID == excludeID {
			continue
		}
		if strings.EqualFold(email.EmailAddress, address) {
			s.metrics.RecordValidationFailure("email_duplicate")
			return dErrors.Newf(dErrors.CodeConflict, "Contact already has an email address %s", address)
		}
	}
	return nil
}

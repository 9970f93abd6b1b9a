package service

import (
	"context"
	"errors"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/sentinel"
)

// Ordered existence checks down the ownership chain. Every mutating operation
// resolves its chain top-down (contact, then parent record, then child) and
// stops at the first missing link, so the caller always learns exactly which
// entity was absent and no lookup runs below a broken link.

func (s *Service) resolveContact(ctx context.Context, contactID id.ContactID) (*models.Contact, error) {
	contact, err := s.stores.Contacts.FindByID(ctx, contactID)
	if err != nil {
		return nil, notFoundOr(err, "Contact", int64(contactID), "failed to load contact")
	}
	return contact, nil
}

func (s *Service) resolveAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) (*models.ContactAddress, error) {
	address, err := s.stores.Addresses.FindByContactAndID(ctx, contactID, addressID)
	if err != nil {
		return nil, notFoundOr(err, "Contact address", int64(addressID), "failed to load contact address")
	}
	return address, nil
}

func (s *Service) resolvePhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) (*models.ContactPhone, error) {
	phone, err := s.stores.Phones.FindByContactAndID(ctx, contactID, phoneID)
	if err != nil {
		return nil, notFoundOr(err, "Contact phone", int64(phoneID), "failed to load contact phone")
	}
	return phone, nil
}

// resolveLinkedPhone loads the phone half of an address-phone pair by its own
// id. A link row whose phone row is gone is a consistency violation; the
// resolver still reports it as a phone-specific miss rather than crashing or
// returning something generic.
func (s *Service) resolveLinkedPhone(ctx context.Context, phoneID id.ContactPhoneID) (*models.ContactPhone, error) {
	phone, err := s.stores.Phones.FindByID(ctx, phoneID)
	if err != nil {
		return nil, notFoundOr(err, "Contact phone", int64(phoneID), "failed to load contact phone")
	}
	return phone, nil
}

func (s *Service) resolveAddressPhone(ctx context.Context, linkID id.ContactAddressPhoneID) (*models.ContactAddressPhone, error) {
	link, err := s.stores.AddressPhones.FindByID(ctx, linkID)
	if err != nil {
		return nil, notFoundOr(err, "Contact address phone", int64(linkID), "failed to load contact address phone")
	}
	return link, nil
}

func (s *Service) resolveEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) (*models.ContactEmail, error) {
	email, err := s.stores.Emails.FindByContactAndID(ctx, contactID, emailID)
	if err != nil {
		return nil, notFoundOr(err, "Contact email", int64(emailID), "failed to load contact email")
	}
	return email, nil
}

func (s *Service) resolveIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) (*models.ContactIdentity, error) {
	identity, err := s.stores.Identities.FindByContactAndID(ctx, contactID, identityID)
	if err != nil {
		return nil, notFoundOr(err, "Contact identity", int64(identityID), "failed to load contact identity")
	}
	return identity, nil
}

func (s *Service) resolveRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) (*models.ContactRestriction, error) {
	restriction, err := s.stores.Restrictions.FindByContactAndID(ctx, contactID, restrictionID)
	if err != nil {
		return nil, notFoundOr(err, "Contact restriction", int64(restrictionID), "failed to load contact restriction")
	}
	return restriction, nil
}

// notFoundOr translates a store miss into a kind/id-bearing domain error and
// wraps anything else as internal.
func notFoundOr(err error, kind string, entityID int64, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(kind, entityID)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}

// wrapWrite translates a failed store write: a constraint violation becomes a
// conflict the caller can act on, anything else stays internal.
func wrapWrite(err error, message string) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.Wrap(err, dErrors.CodeConflict, message)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}

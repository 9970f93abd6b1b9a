package service

import (
	"context"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/requestcontext"
)

type IdentityRequest struct {
	IdentityTypeCode string `json:"identity_type_code"`
	IdentityValue    string `json:"identity_value"`
	IssuingAuthority string `json:"issuing_authority,omitempty"`
}

// CreateIdentity adds an identity document to a contact.
func (s *Service) CreateIdentity(ctx context.Context, contactID id.ContactID, req IdentityRequest) (*IdentityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreateIdentity")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	if _, err := s.refdata.Validate(ctx, referencedata.GroupIdentityType, req.IdentityTypeCode, referencedata.CreationContext); err != nil {
		s.metrics.RecordValidationFailure("identity_type")
		return nil, err
	}

	identity := &models.ContactIdentity{
		ContactID:        contactID,
		IdentityTypeCode: req.IdentityTypeCode,
		IdentityValue:    req.IdentityValue,
		IssuingAuthority: req.IssuingAuthority,
	}
	identity.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Identities.Save(ctx, identity); err != nil {
		return nil, wrapWrite(err, "failed to save contact identity")
	}

	s.metrics.RecordWrite("identity", "create")
	s.publish(ctx, events.TypeIdentityCreated, contactID, int64(identity.ID))
	return s.identityDetails(ctx, identity)
}

// GetIdentity returns one identity document with its type description.
func (s *Service) GetIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) (*IdentityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetIdentity")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	identity, err := s.resolveIdentity(ctx, contactID, identityID)
	if err != nil {
		return nil, err
	}
	return s.identityDetails(ctx, identity)
}

// UpdateIdentity replaces an identity document's fields. An identity type
// that has since been deactivated stays acceptable on edit.
func (s *Service) UpdateIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID, req IdentityRequest) (*IdentityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdateIdentity")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	identity, err := s.resolveIdentity(ctx, contactID, identityID)
	if err != nil {
		return nil, err
	}
	if _, err := s.refdata.Validate(ctx, referencedata.GroupIdentityType, req.IdentityTypeCode, referencedata.EditContext); err != nil {
		s.metrics.RecordValidationFailure("identity_type")
		return nil, err
	}

	identity.IdentityTypeCode = req.IdentityTypeCode
	identity.IdentityValue = req.IdentityValue
	identity.IssuingAuthority = req.IssuingAuthority
	identity.StampUpdate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Identities.Save(ctx, identity); err != nil {
		return nil, wrapWrite(err, "failed to update contact identity")
	}

	s.metrics.RecordWrite("identity", "update")
	s.publish(ctx, events.TypeIdentityUpdated, contactID, int64(identity.ID))
	return s.identityDetails(ctx, identity)
}

// DeleteIdentity removes an identity document.
func (s *Service) DeleteIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) error {
	ctx, span := s.tracer.Start(ctx, "contact.DeleteIdentity")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return err
	}
	identity, err := s.resolveIdentity(ctx, contactID, identityID)
	if err != nil {
		return err
	}
	if err := s.stores.Identities.DeleteByID(ctx, identity.ID); err != nil {
		return wrapWrite(err, "failed to delete contact identity")
	}

	s.metrics.RecordWrite("identity", "delete")
	s.publish(ctx, events.TypeIdentityDeleted, contactID, int64(identity.ID))
	return nil
}

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

type RestrictionRequest struct {
	RestrictionTypeCode string     `json:"restriction_type_code"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	Comments            string     `json:"comments,omitempty"`
	StaffUsername       string     `json:"entered_by_username"`
}

// CreateRestriction adds an estate-wide restriction to a contact. The
// restriction type must be active and the dates must be ordered.
func (s *Service) CreateRestriction(ctx context.Context, contactID id.ContactID, req RestrictionRequest) (*RestrictionDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreateRestriction")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	if err := s.validateRestrictionPayload(ctx, req, referencedata.CreationContext); err != nil {
		return nil, err
	}

	restriction := &models.ContactRestriction{
		ContactID:           contactID,
		RestrictionTypeCode: req.RestrictionTypeCode,
		StartDate:           req.StartDate,
		ExpiryDate:          req.ExpiryDate,
		Comments:            req.Comments,
		StaffUsername:       req.StaffUsername,
	}
	restriction.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Restrictions.Save(ctx, restriction); err != nil {
		return nil, wrapWrite(err, "failed to save contact restriction")
	}

	s.metrics.RecordWrite("restriction", "create")
	s.publish(ctx, events.TypeRestrictionCreated, contactID, int64(restriction.ID))
	return s.restrictionDetails(ctx, restriction)
}

// GetRestriction returns one restriction with its type description.
func (s *Service) GetRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) (*RestrictionDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetRestriction")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	restriction, err := s.resolveRestriction(ctx, contactID, restrictionID)
	if err != nil {
		return nil, err
	}
	return s.restrictionDetails(ctx, restriction)
}

// ListRestrictions returns all of a contact's restrictions.
func (s *Service) ListRestrictions(ctx context.Context, contactID id.ContactID) ([]*RestrictionDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.ListRestrictions")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	restrictions, err := s.stores.Restrictions.FindAllByContact(ctx, contactID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contact restrictions")
	}
	details := make([]*RestrictionDetails, 0, len(restrictions))
	for _, restriction := range restrictions {
		d, err := s.restrictionDetails(ctx, restriction)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// UpdateRestriction replaces a restriction's fields under the same rules as
// create, except that a deactivated restriction type stays acceptable.
func (s *Service) UpdateRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID, req RestrictionRequest) (*RestrictionDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdateRestriction")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	restriction, err := s.resolveRestriction(ctx, contactID, restrictionID)
	if err != nil {
		return nil, err
	}
	if err := s.validateRestrictionPayload(ctx, req, referencedata.EditContext); err != nil {
		return nil, err
	}

	restriction.RestrictionTypeCode = req.RestrictionTypeCode
	restriction.StartDate = req.StartDate
	restriction.ExpiryDate = req.ExpiryDate
	restriction.Comments = req.Comments
	restriction.StaffUsername = req.StaffUsername
	restriction.StampUpdate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Restrictions.Save(ctx, restriction); err != nil {
		return nil, wrapWrite(err, "failed to update contact restriction")
	}

	s.metrics.RecordWrite("restriction", "update")
	s.publish(ctx, events.TypeRestrictionUpdated, contactID, int64(restriction.ID))
	return s.restrictionDetails(ctx, restriction)
}

// DeleteRestriction removes a restriction.
func (s *Service) DeleteRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) error {
	ctx, span := s.tracer.Start(ctx, "contact.DeleteRestriction")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return err
	}
	restriction, err := s.resolveRestriction(ctx, contactID, restrictionID)
	if err != nil {
		return err
	}
	if err := s.stores.Restrictions.DeleteByID(ctx, restriction.ID); err != nil {
		return wrapWrite(err, "failed to delete contact restriction")
	}

	s.metrics.RecordWrite("restriction", "delete")
	s.publish(ctx, events.TypeRestrictionDeleted, contactID, int64(restriction.ID))
	return nil
}

// validateRestrictionPayload checks the type code first, then the date
// ordering; the same pair of rules runs on create and update.
func (s *Service) validateRestrictionPayload(ctx context.Context, req RestrictionRequest, vc referencedata.ValidationContext) error {
	if _, err := s.refdata.Validate(ctx, referencedata.GroupRestrictionType, req.RestrictionTypeCode, vc); err != nil {
		s.metrics.RecordValidationFailure("restriction_type")
		return err
	}
	if err := models.ValidateRestrictionDates(req.StartDate, req.ExpiryDate); err != nil {
		s.metrics.RecordValidationFailure("restriction_dates")
		return err
	}
	return nil
}

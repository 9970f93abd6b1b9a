package prisonercontact

import (
	"context"
	"time"

	"contactregistry/internal/contact/models"
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

type RestrictionDetails struct {
	models.PrisonerContactRestriction
	RestrictionTypeDescription string `json:"restriction_type_description,omitempty"`
}

// CreateRestriction restricts one prisoner-contact relationship. The same
// type and date rules apply as for estate-wide contact restrictions.
func (s *Service) CreateRestriction(ctx context.Context, relationshipID id.PrisonerContactID, req RestrictionRequest) (*RestrictionDetails, error) {
	if _, err := s.resolveRelationship(ctx, relationshipID); err != nil {
		return nil, err
	}
	if err := s.validateRestrictionPayload(ctx, req, referencedata.CreationContext); err != nil {
		return nil, err
	}

	restriction := &models.PrisonerContactRestriction{
		PrisonerContactID:   relationshipID,
		RestrictionTypeCode: req.RestrictionTypeCode,
		StartDate:           req.StartDate,
		ExpiryDate:          req.ExpiryDate,
		Comments:            req.Comments,
		StaffUsername:       req.StaffUsername,
	}
	restriction.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.restrictions.Save(ctx, restriction); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save prisoner contact restriction")
	}
	return s.restrictionDetails(ctx, restriction)
}

// GetRestriction returns one relationship restriction.
func (s *Service) GetRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) (*RestrictionDetails, error) {
	if _, err := s.resolveRelationship(ctx, relationshipID); err != nil {
		return nil, err
	}
	restriction, err := s.resolveRestriction(ctx, relationshipID, restrictionID)
	if err != nil {
		return nil, err
	}
	return s.restrictionDetails(ctx, restriction)
}

// ListRestrictions returns every restriction on a relationship.
func (s *Service) ListRestrictions(ctx context.Context, relationshipID id.PrisonerContactID) ([]*RestrictionDetails, error) {
	if _, err := s.resolveRelationship(ctx, relationshipID); err != nil {
		return nil, err
	}
	restrictions, err := s.restrictions.FindAllByRelationship(ctx, relationshipID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list prisoner contact restrictions")
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

// UpdateRestriction replaces a restriction's fields under the same rules,
// tolerating a type code deactivated since creation.
func (s *Service) UpdateRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID, req RestrictionRequest) (*RestrictionDetails, error) {
	if _, err := s.resolveRelationship(ctx, relationshipID); err != nil {
		return nil, err
	}
	restriction, err := s.resolveRestriction(ctx, relationshipID, restrictionID)
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
	if err := s.restrictions.Save(ctx, restriction); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update prisoner contact restriction")
	}
	return s.restrictionDetails(ctx, restriction)
}

// DeleteRestriction removes a relationship restriction.
func (s *Service) DeleteRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) error {
	if _, err := s.resolveRelationship(ctx, relationshipID); err != nil {
		return err
	}
	restriction, err := s.resolveRestriction(ctx, relationshipID, restrictionID)
	if err != nil {
		return err
	}
	if err := s.restrictions.DeleteByID(ctx, restriction.ID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete prisoner contact restriction")
	}
	return nil
}

func (s *Service) resolveRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) (*models.PrisonerContactRestriction, error) {
	restriction, err := s.restrictions.FindByRelationshipAndID(ctx, relationshipID, restrictionID)
	if err != nil {
		return nil, notFoundOr(err, "Prisoner contact restriction", int64(restrictionID), "failed to load prisoner contact restriction")
	}
	return restriction, nil
}

func (s *Service) restrictionDetails(ctx context.Context, restriction *models.PrisonerContactRestriction) (*RestrictionDetails, error) {
	description, err := s.refdata.Description(ctx, referencedata.GroupRestrictionType, restriction.RestrictionTypeCode)
	if err != nil {
		return nil, err
	}
	return &RestrictionDetails{PrisonerContactRestriction: *restriction, RestrictionTypeDescription: description}, nil
}

func (s *Service) validateRestrictionPayload(ctx context.Context, req RestrictionRequest, vc referencedata.ValidationContext) error {
	if _, err := s.refdata.Validate(ctx, referencedata.GroupRestrictionType, req.RestrictionTypeCode, vc); err != nil {
		return err
	}
	return models.ValidateRestrictionDates(req.StartDate, req.ExpiryDate)
}

// Package prisonercontact manages the relationship record between a prisoner
// and a contact, plus the restrictions scoped to that relationship. It reuses
// the same resolution, reference-code and date-ordering pipeline as the
// contact core, applied to the relationship chain.
package prisonercontact

import (
	"context"
	"errors"
	"log/slog"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/requestcontext"
)

type ContactStore interface {
	FindByID(ctx context.Context, contactID id.ContactID) (*models.Contact, error)
}

type RelationshipStore interface {
	Save(ctx context.Context, relationship *models.PrisonerContact) error
	FindByID(ctx context.Context, relationshipID id.PrisonerContactID) (*models.PrisonerContact, error)
	FindAllByPrisoner(ctx context.Context, prisonerNumber string) ([]*models.PrisonerContact, error)
}

type RestrictionStore interface {
	Save(ctx context.Context, restriction *models.PrisonerContactRestriction) error
	FindByRelationshipAndID(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) (*models.PrisonerContactRestriction, error)
	FindAllByRelationship(ctx context.Context, relationshipID id.PrisonerContactID) ([]*models.PrisonerContactRestriction, error)
	DeleteByID(ctx context.Context, restrictionID id.PrisonerContactRestrictionID) error
}

type Service struct {
	contacts      ContactStore
	relationships RelationshipStore
	restrictions  RestrictionStore
	refdata       *referencedata.Validator
	logger        *slog.Logger
}

func New(contacts ContactStore, relationships RelationshipStore, restrictions RestrictionStore, refdata *referencedata.Validator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		contacts:      contacts,
		relationships: relationships,
		restrictions:  restrictions,
		refdata:       refdata,
		logger:        logger,
	}
}

type RelationshipRequest struct {
	ContactID            id.ContactID `json:"contact_id"`
	PrisonerNumber       string       `json:"prisoner_number"`
	RelationshipTypeCode string       `json:"relationship_type_code"`
	Active               bool         `json:"active"`
	ApprovedVisitor      bool         `json:"approved_visitor"`
	NextOfKin            bool         `json:"next_of_kin"`
	EmergencyContact     bool         `json:"emergency_contact"`
	Comments             string       `json:"comments,omitempty"`
}

// RelationshipDetails joins the relationship with its type description.
type RelationshipDetails struct {
	models.PrisonerContact
	RelationshipTypeDescription string `json:"relationship_type_description,omitempty"`
}

// CreateRelationship links a prisoner to an existing contact. The contact
// must already exist; relationships never create contacts implicitly.
func (s *Service) CreateRelationship(ctx context.Context, req RelationshipRequest) (*RelationshipDetails, error) {
	if _, err := s.contacts.FindByID(ctx, req.ContactID); err != nil {
		return nil, notFoundOr(err, "Contact", int64(req.ContactID), "failed to load contact")
	}
	if req.PrisonerNumber == "" {
		return nil, dErrors.Validation("Prisoner number is required")
	}
	if _, err := s.refdata.Validate(ctx, referencedata.GroupRelationship, req.RelationshipTypeCode, referencedata.CreationContext); err != nil {
		return nil, err
	}

	relationship := &models.PrisonerContact{
		ContactID:            req.ContactID,
		PrisonerNumber:       req.PrisonerNumber,
		RelationshipTypeCode: req.RelationshipTypeCode,
		Active:               req.Active,
		ApprovedVisitor:      req.ApprovedVisitor,
		NextOfKin:            req.NextOfKin,
		EmergencyContact:     req.EmergencyContact,
		Comments:             req.Comments,
	}
	relationship.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.relationships.Save(ctx, relationship); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save prisoner contact")
	}
	return s.relationshipDetails(ctx, relationship)
}

// GetRelationship returns one relationship record.
func (s *Service) GetRelationship(ctx context.Context, relationshipID id.PrisonerContactID) (*RelationshipDetails, error) {
	relationship, err := s.resolveRelationship(ctx, relationshipID)
	if err != nil {
		return nil, err
	}
	return s.relationshipDetails(ctx, relationship)
}

// ListByPrisoner returns every relationship held against a prisoner number.
func (s *Service) ListByPrisoner(ctx context.Context, prisonerNumber string) ([]*RelationshipDetails, error) {
	relationships, err := s.relationships.FindAllByPrisoner(ctx, prisonerNumber)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list prisoner contacts")
	}
	details := make([]*RelationshipDetails, 0, len(relationships))
	for _, relationship := range relationships {
		d, err := s.relationshipDetails(ctx, relationship)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// UpdateRelationship replaces the mutable relationship fields. The contact
// and prisoner the record binds are fixed at creation.
func (s *Service) UpdateRelationship(ctx context.Context, relationshipID id.PrisonerContactID, req RelationshipRequest) (*RelationshipDetails, error) {
	relationship, err := s.resolveRelationship(ctx, relationshipID)
	if err != nil {
		return nil, err
	}
	if _, err := s.refdata.Validate(ctx, referencedata.GroupRelationship, req.RelationshipTypeCode, referencedata.EditContext); err != nil {
		return nil, err
	}

	relationship.RelationshipTypeCode = req.RelationshipTypeCode
	relationship.Active = req.Active
	relationship.ApprovedVisitor = req.ApprovedVisitor
	relationship.NextOfKin = req.NextOfKin
	relationship.EmergencyContact = req.EmergencyContact
	relationship.Comments = req.Comments
	relationship.StampUpdate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.relationships.Save(ctx, relationship); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update prisoner contact")
	}
	return s.relationshipDetails(ctx, relationship)
}

func (s *Service) resolveRelationship(ctx context.Context, relationshipID id.PrisonerContactID) (*models.PrisonerContact, error) {
	relationship, err := s.relationships.FindByID(ctx, relationshipID)
	if err != nil {
		return nil, notFoundOr(err, "Prisoner contact", int64(relationshipID), "failed to load prisoner contact")
	}
	return relationship, nil
}

func (s *Service) relationshipDetails(ctx context.Context, relationship *models.PrisonerContact) (*RelationshipDetails, error) {
	description, err := s.refdata.Description(ctx, referencedata.GroupRelationship, relationship.RelationshipTypeCode)
	if err != nil {
		return nil, err
	}
	return &RelationshipDetails{PrisonerContact: *relationship, RelationshipTypeDescription: description}, nil
}

func notFoundOr(err error, kind string, entityID int64, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(kind, entityID)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}

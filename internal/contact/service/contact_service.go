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

type ContactRequest struct {
	TitleCode               string                         `json:"title_code,omitempty"`
	LastName                string                         `json:"last_name"`
	FirstName               string                         `json:"first_name"`
	MiddleNames             string                         `json:"middle_names,omitempty"`
	DateOfBirth             *time.Time                     `json:"date_of_birth,omitempty"`
	EstimatedIsOverEighteen models.EstimatedIsOverEighteen `json:"estimated_is_over_eighteen,omitempty"`
	IsStaff                 bool                           `json:"is_staff"`
	GenderCode              string                         `json:"gender_code,omitempty"`
	DomesticStatusCode      string                         `json:"domestic_status_code,omitempty"`
	LanguageCode            string                         `json:"language_code,omitempty"`
	NationalityCode         string                         `json:"nationality_code,omitempty"`
	InterpreterRequired     bool                           `json:"interpreter_required"`
}

// CreateContact creates the aggregate root. Names are required; the
// over-eighteen estimate is only meaningful while the date of birth is
// unknown, so supplying both is rejected.
func (s *Service) CreateContact(ctx context.Context, req ContactRequest) (*ContactDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.CreateContact")
	defer span.End()

	if err := s.validateContactPayload(ctx, req, referencedata.CreationContext); err != nil {
		return nil, err
	}

	contact := &models.Contact{}
	applyContactRequest(contact, req)
	contact.StampCreate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Contacts.Save(ctx, contact); err != nil {
		return nil, wrapWrite(err, "failed to save contact")
	}

	s.metrics.IncrementContactsCreated()
	s.publish(ctx, events.TypeContactCreated, contact.ID, int64(contact.ID))
	return s.contactDetails(ctx, contact)
}

// GetContact returns the contact with its coded attributes resolved to
// descriptions.
func (s *Service) GetContact(ctx context.Context, contactID id.ContactID) (*ContactDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.GetContact")
	defer span.End()

	contact, err := s.resolveContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	return s.contactDetails(ctx, contact)
}

// UpdateContact replaces the contact's own fields. Dependent records are
// untouched; they have their own operations.
func (s *Service) UpdateContact(ctx context.Context, contactID id.ContactID, req ContactRequest) (*ContactDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.UpdateContact")
	defer span.End()

	contact, err := s.resolveContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.validateContactPayload(ctx, req, referencedata.EditContext); err != nil {
		return nil, err
	}

	applyContactRequest(contact, req)
	contact.StampUpdate(requestcontext.Username(ctx), requestcontext.Now(ctx))
	if err := s.stores.Contacts.Save(ctx, contact); err != nil {
		return nil, wrapWrite(err, "failed to update contact")
	}

	s.publish(ctx, events.TypeContactUpdated, contact.ID, int64(contact.ID))
	return s.contactDetails(ctx, contact)
}

func (s *Service) validateContactPayload(ctx context.Context, req ContactRequest, vc referencedata.ValidationContext) error {
	if req.LastName == "" || req.FirstName == "" {
		s.metrics.RecordValidationFailure("contact_names")
		return dErrors.Validation("Contact first name and last name are required")
	}
	if req.DateOfBirth != nil && req.EstimatedIsOverEighteen != "" {
		s.metrics.RecordValidationFailure("contact_over_eighteen")
		return dErrors.Validation("Estimated over eighteen must not be supplied when the date of birth is known")
	}

	checks := []struct {
		group referencedata.Group
		code  string
		rule  string
	}{
		{referencedata.GroupTitle, req.TitleCode, "title"},
		{referencedata.GroupGender, req.GenderCode, "gender"},
		{referencedata.GroupDomesticStatus, req.DomesticStatusCode, "domestic_status"},
		{referencedata.GroupLanguage, req.LanguageCode, "language"},
		{referencedata.GroupNationality, req.NationalityCode, "nationality"},
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

func applyContactRequest(contact *models.Contact, req ContactRequest) {
	contact.TitleCode = req.TitleCode
	contact.LastName = req.LastName
	contact.FirstName = req.FirstName
	contact.MiddleNames = req.MiddleNames
	contact.DateOfBirth = req.DateOfBirth
	contact.EstimatedIsOverEighteen = req.EstimatedIsOverEighteen
	contact.IsStaff = req.IsStaff
	contact.GenderCode = req.GenderCode
	contact.DomesticStatusCode = req.DomesticStatusCode
	contact.LanguageCode = req.LanguageCode
	contact.NationalityCode = req.NationalityCode
	contact.InterpreterRequired = req.InterpreterRequired
}

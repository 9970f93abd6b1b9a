package service

import (
	"context"
	"errors"
	"fmt"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/platform/events"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/requestcontext"
)

// PatchEmploymentsRequest carries three disjoint operation lists applied to a
// contact's employments in one call.
type PatchEmploymentsRequest struct {
	Create []CreateEmployment `json:"create_employments"`
	Update []UpdateEmployment `json:"update_employments"`
	Delete []id.EmploymentID  `json:"delete_employments"`
}

type CreateEmployment struct {
	OrganisationID id.OrganisationID `json:"organisation_id"`
	Active         bool              `json:"active"`
}

type UpdateEmployment struct {
	EmploymentID   id.EmploymentID   `json:"employment_id"`
	OrganisationID id.OrganisationID `json:"organisation_id"`
	Active         bool              `json:"active"`
}

// PatchEmploymentsResponse returns the full post-patch employment list plus
// the ids each operation list produced, for caller-side correlation.
type PatchEmploymentsResponse struct {
	Employments []*EmploymentDetails `json:"employments"`
	CreatedIDs  []id.EmploymentID    `json:"created_ids"`
	UpdatedIDs  []id.EmploymentID    `json:"updated_ids"`
	DeletedIDs  []id.EmploymentID    `json:"deleted_ids"`
}

// PatchEmployments applies a mixed batch of employment creates, updates and
// deletes atomically. Every update and delete entry is checked against the
// current employment set before the first write, and the writes run inside
// one transaction, so a patch referencing an unknown employment id performs
// no writes at all.
func (s *Service) PatchEmployments(ctx context.Context, contactID id.ContactID, req PatchEmploymentsRequest) (*PatchEmploymentsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "contact.PatchEmployments")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}

	existing, err := s.stores.Employments.FindAllByContact(ctx, contactID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employments")
	}
	byID := make(map[id.EmploymentID]*models.Employment, len(existing))
	for _, employment := range existing {
		byID[employment.ID] = employment
	}

	// Reject the whole batch before any write.
	for _, update := range req.Update {
		if _, ok := byID[update.EmploymentID]; !ok {
			return nil, employmentNotFound(update.EmploymentID)
		}
	}
	for _, deleteID := range req.Delete {
		if _, ok := byID[deleteID]; !ok {
			return nil, employmentNotFound(deleteID)
		}
	}

	username := requestcontext.Username(ctx)
	now := requestcontext.Now(ctx)

	var createdIDs, updatedIDs, deletedIDs []id.EmploymentID
	err = s.runner.RunInTx(ctx, func(ctx context.Context) error {
		for _, update := range req.Update {
			employment := byID[update.EmploymentID]
			employment.OrganisationID = update.OrganisationID
			employment.Active = update.Active
			employment.StampUpdate(username, now)
			if err := s.stores.Employments.Save(ctx, employment); err != nil {
				return fmt.Errorf("update employment %d: %w", update.EmploymentID, err)
			}
			updatedIDs = append(updatedIDs, employment.ID)
		}
		for _, deleteID := range req.Delete {
			if err := s.stores.Employments.DeleteByID(ctx, deleteID); err != nil {
				return fmt.Errorf("delete employment %d: %w", deleteID, err)
			}
			deletedIDs = append(deletedIDs, deleteID)
		}
		for _, create := range req.Create {
			employment := &models.Employment{
				ContactID:      contactID,
				OrganisationID: create.OrganisationID,
				Active:         create.Active,
			}
			employment.StampCreate(username, now)
			if err := s.stores.Employments.Save(ctx, employment); err != nil {
				return fmt.Errorf("create employment: %w", err)
			}
			createdIDs = append(createdIDs, employment.ID)
		}
		return nil
	})
	if err != nil {
		return nil, wrapWrite(err, "failed to patch employments")
	}

	details, err := s.listEmploymentDetails(ctx, contactID)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordEmploymentPatch(len(createdIDs), len(updatedIDs), len(deletedIDs))
	s.publishEvent(ctx, events.Event{
		Type:       events.TypeEmploymentsPatched,
		ContactID:  int64(contactID),
		CreatedIDs: employmentIDs(createdIDs),
		UpdatedIDs: employmentIDs(updatedIDs),
		DeletedIDs: employmentIDs(deletedIDs),
	})

	return &PatchEmploymentsResponse{
		Employments: details,
		CreatedIDs:  createdIDs,
		UpdatedIDs:  updatedIDs,
		DeletedIDs:  deletedIDs,
	}, nil
}

// ListEmployments returns all of a contact's employments decorated with
// organisation summaries.
func (s *Service) ListEmployments(ctx context.Context, contactID id.ContactID) ([]*EmploymentDetails, error) {
	ctx, span := s.tracer.Start(ctx, "contact.ListEmployments")
	defer span.End()

	if _, err := s.resolveContact(ctx, contactID); err != nil {
		return nil, err
	}
	return s.listEmploymentDetails(ctx, contactID)
}

// listEmploymentDetails re-loads the employment set and joins each row with
// its organisation summary. A summary miss leaves Organisation nil rather
// than failing the read; the registries can briefly disagree during sync.
func (s *Service) listEmploymentDetails(ctx context.Context, contactID id.ContactID) ([]*EmploymentDetails, error) {
	employments, err := s.stores.Employments.FindAllByContact(ctx, contactID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employments")
	}
	details := make([]*EmploymentDetails, 0, len(employments))
	for _, employment := range employments {
		detail := &EmploymentDetails{Employment: *employment}
		summary, err := s.organisations.SummaryByID(ctx, employment.OrganisationID)
		switch {
		case err == nil:
			detail.Organisation = summary
		case isStoreMiss(err):
			s.logger.WarnContext(ctx, "employment references unknown organisation",
				"contact_id", contactID,
				"employment_id", employment.ID,
				"organisation_id", employment.OrganisationID,
			)
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load organisation summary")
		}
		details = append(details, detail)
	}
	return details, nil
}

func employmentNotFound(employmentID id.EmploymentID) error {
	return dErrors.Newf(dErrors.CodeNotFound, "Employment with id %d not found", employmentID)
}

func employmentIDs(ids []id.EmploymentID) []int64 {
	out := make([]int64, len(ids))
	for i, employmentID := range ids {
		out[i] = int64(employmentID)
	}
	return out
}

func isStoreMiss(err error) bool {
	return errors.Is(err, sentinel.ErrNotFound)
}

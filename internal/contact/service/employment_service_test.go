package service

import (
	"time"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/organisation"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
)

func (f *memoryFixture) seedEmployment(s *ServiceSuite, contactID id.ContactID, orgID id.OrganisationID, active bool) id.EmploymentID {
	employment := &models.Employment{ContactID: contactID, OrganisationID: orgID, Active: active}
	employment.StampCreate("SEED_USER", fixedTime.Add(-24*time.Hour))
	s.Require().NoError(f.employments.Save(s.ctx, employment))
	return employment.ID
}

func (s *ServiceSuite) TestPatchEmploymentsCreateOnly() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	f.seedEmployment(s, contactID, 1, true)
	f.seedEmployment(s, contactID, 2, true)
	f.organisations.Put(&organisation.Summary{OrganisationID: 3, Name: "Acme Logistics", Active: true})

	response, err := f.service.PatchEmployments(s.ctx, contactID, PatchEmploymentsRequest{
		Create: []CreateEmployment{{OrganisationID: 3, Active: true}},
	})
	s.Require().NoError(err)

	s.Len(response.Employments, 3)
	s.Equal([]id.EmploymentID{3}, response.CreatedIDs)
	s.Empty(response.UpdatedIDs)
	s.Empty(response.DeletedIDs)
}

func (s *ServiceSuite) TestPatchEmploymentsUnknownUpdateIDPerformsNoWrites() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)

	_, err := f.service.PatchEmployments(s.ctx, contactID, PatchEmploymentsRequest{
		Create: []CreateEmployment{{OrganisationID: 9, Active: true}},
		Update: []UpdateEmployment{{EmploymentID: 1, OrganisationID: 2, Active: false}},
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Employment with id 1 not found", err.Error())

	// The create listed alongside the bad update must not have been applied.
	remaining, listErr := f.employments.FindAllByContact(s.ctx, contactID)
	s.Require().NoError(listErr)
	s.Empty(remaining)
}

func (s *ServiceSuite) TestPatchEmploymentsUnknownDeleteIDPerformsNoWrites() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	existingID := f.seedEmployment(s, contactID, 1, true)

	_, err := f.service.PatchEmployments(s.ctx, contactID, PatchEmploymentsRequest{
		Update: []UpdateEmployment{{EmploymentID: existingID, OrganisationID: 5, Active: false}},
		Delete: []id.EmploymentID{42},
	})

	s.Require().Error(err)
	s.Equal("Employment with id 42 not found", err.Error())

	unchanged, listErr := f.employments.FindAllByContact(s.ctx, contactID)
	s.Require().NoError(listErr)
	s.Require().Len(unchanged, 1)
	s.Equal(id.OrganisationID(1), unchanged[0].OrganisationID)
	s.True(unchanged[0].Active)
	s.Nil(unchanged[0].UpdatedBy)
}

func (s *ServiceSuite) TestPatchEmploymentsMixedBatch() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	keepID := f.seedEmployment(s, contactID, 1, true)
	dropID := f.seedEmployment(s, contactID, 2, true)
	f.organisations.Put(&organisation.Summary{OrganisationID: 4, Name: "Acme Logistics", Active: true})
	f.organisations.Put(&organisation.Summary{OrganisationID: 7, Name: "Northern Foods", Active: false})

	response, err := f.service.PatchEmployments(s.ctx, contactID, PatchEmploymentsRequest{
		Create: []CreateEmployment{{OrganisationID: 7, Active: true}},
		Update: []UpdateEmployment{{EmploymentID: keepID, OrganisationID: 4, Active: false}},
		Delete: []id.EmploymentID{dropID},
	})
	s.Require().NoError(err)

	s.Equal([]id.EmploymentID{keepID}, response.UpdatedIDs)
	s.Equal([]id.EmploymentID{dropID}, response.DeletedIDs)
	s.Len(response.CreatedIDs, 1)
	s.Require().Len(response.Employments, 2)

	byID := make(map[id.EmploymentID]*EmploymentDetails)
	for _, detail := range response.Employments {
		byID[detail.ID] = detail
	}

	updated := byID[keepID]
	s.Require().NotNil(updated)
	s.Equal(id.OrganisationID(4), updated.OrganisationID)
	s.False(updated.Active)
	s.Require().NotNil(updated.Organisation)
	s.Equal("Acme Logistics", updated.Organisation.Name)
	s.Require().NotNil(updated.UpdatedBy)
	s.Equal("JBAKER_GEN", *updated.UpdatedBy)
	s.Equal(&fixedTime, updated.UpdatedTime)

	created := byID[response.CreatedIDs[0]]
	s.Require().NotNil(created)
	s.Equal("JBAKER_GEN", created.CreatedBy)
	s.Equal(fixedTime, created.CreatedTime)
	s.Require().NotNil(created.Organisation)
	s.False(created.Organisation.Active)
}

func (s *ServiceSuite) TestPatchEmploymentsToleratesUnknownOrganisationOnRead() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	f.seedEmployment(s, contactID, 1234, true)

	details, err := f.service.ListEmployments(s.ctx, contactID)
	s.Require().NoError(err)
	s.Require().Len(details, 1)
	s.Nil(details[0].Organisation)
}

func (s *ServiceSuite) TestPatchEmploymentsPublishesOneCorrelatedEvent() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	dropID := f.seedEmployment(s, contactID, 2, true)

	_, err := f.service.PatchEmployments(s.ctx, contactID, PatchEmploymentsRequest{
		Create: []CreateEmployment{{OrganisationID: 3, Active: true}},
		Delete: []id.EmploymentID{dropID},
	})
	s.Require().NoError(err)

	published := f.published.Events()
	s.Require().Len(published, 1)
	s.Equal([]int64{2}, published[0].CreatedIDs)
	s.Equal([]int64{int64(dropID)}, published[0].DeletedIDs)
	s.Equal("JBAKER_GEN", published[0].Username)
	s.Equal(int64(contactID), published[0].ContactID)
}

package prisonercontact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/contact/store/memory"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/requestcontext"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

type PrisonerContactSuite struct {
	suite.Suite
	ctx           context.Context
	service       *Service
	contacts      *memory.ContactStore
	relationships *memory.PrisonerContactStore
}

func (s *PrisonerContactSuite) SetupTest() {
	ctx := requestcontext.WithUsername(context.Background(), "JBAKER_GEN")
	s.ctx = requestcontext.WithTime(ctx, fixedTime)

	codes := referencedata.NewInMemory()
	codes.Put(&referencedata.Code{Group: referencedata.GroupRelationship, Code: "FRI", Description: "Friend", Active: true})
	codes.Put(&referencedata.Code{Group: referencedata.GroupRelationship, Code: "GUAR", Description: "Guardian", Active: false})
	codes.Put(&referencedata.Code{Group: referencedata.GroupRestrictionType, Code: "BAN", Description: "Banned", Active: true})

	s.contacts = memory.NewContactStore()
	s.relationships = memory.NewPrisonerContactStore()
	s.service = New(s.contacts, s.relationships, memory.NewPrisonerContactRestrictionStore(), referencedata.NewValidator(codes), nil)
}

func TestPrisonerContactSuite(t *testing.T) {
	suite.Run(t, new(PrisonerContactSuite))
}

func (s *PrisonerContactSuite) seedContact() id.ContactID {
	contact := &models.Contact{LastName: "Baker", FirstName: "Joan"}
	contact.StampCreate("SEED_USER", fixedTime)
	s.Require().NoError(s.contacts.Save(s.ctx, contact))
	return contact.ID
}

func (s *PrisonerContactSuite) seedRelationship() id.PrisonerContactID {
	details, err := s.service.CreateRelationship(s.ctx, RelationshipRequest{
		ContactID:            s.seedContact(),
		PrisonerNumber:       "A1234BC",
		RelationshipTypeCode: "FRI",
		Active:               true,
	})
	s.Require().NoError(err)
	return details.ID
}

func (s *PrisonerContactSuite) TestCreateRelationshipRequiresExistingContact() {
	_, err := s.service.CreateRelationship(s.ctx, RelationshipRequest{
		ContactID:            77,
		PrisonerNumber:       "A1234BC",
		RelationshipTypeCode: "FRI",
	})
	s.Require().Error(err)
	s.Equal("Contact (77) not found", err.Error())
}

func (s *PrisonerContactSuite) TestCreateRelationshipValidatesType() {
	contactID := s.seedContact()

	s.Run("unknown code", func() {
		_, err := s.service.CreateRelationship(s.ctx, RelationshipRequest{
			ContactID:            contactID,
			PrisonerNumber:       "A1234BC",
			RelationshipTypeCode: "PEN",
		})
		s.Require().Error(err)
		s.Equal("Unsupported relationship type (PEN)", err.Error())
	})

	s.Run("inactive code rejected on create", func() {
		_, err := s.service.CreateRelationship(s.ctx, RelationshipRequest{
			ContactID:            contactID,
			PrisonerNumber:       "A1234BC",
			RelationshipTypeCode: "GUAR",
		})
		s.Require().Error(err)
		s.Equal("Unsupported relationship type (GUAR)", err.Error())
	})
}

func (s *PrisonerContactSuite) TestUpdateRelationshipAcceptsInactiveType() {
	relationshipID := s.seedRelationship()

	updated, err := s.service.UpdateRelationship(s.ctx, relationshipID, RelationshipRequest{
		RelationshipTypeCode: "GUAR",
		Active:               true,
	})
	s.Require().NoError(err)
	s.Equal("GUAR", updated.RelationshipTypeCode)
	s.Equal("Guardian", updated.RelationshipTypeDescription)
}

func (s *PrisonerContactSuite) TestListByPrisoner() {
	s.seedRelationship()

	listed, err := s.service.ListByPrisoner(s.ctx, "A1234BC")
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal("Friend", listed[0].RelationshipTypeDescription)

	other, err := s.service.ListByPrisoner(s.ctx, "Z9999ZZ")
	s.Require().NoError(err)
	s.Empty(other)
}

func (s *PrisonerContactSuite) TestRestrictionDateRuleApplies() {
	relationshipID := s.seedRelationship()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expiry := start.AddDate(0, -1, 0)

	_, err := s.service.CreateRestriction(s.ctx, relationshipID, RestrictionRequest{
		RestrictionTypeCode: "BAN",
		StartDate:           &start,
		ExpiryDate:          &expiry,
		StaffUsername:       "OFFICER_1",
	})
	s.Require().Error(err)
	s.Equal("Restriction start date should be before the restriction end date", err.Error())
}

func (s *PrisonerContactSuite) TestRestrictionScopedToRelationship() {
	first := s.seedRelationship()
	second := s.seedRelationship()

	created, err := s.service.CreateRestriction(s.ctx, first, RestrictionRequest{
		RestrictionTypeCode: "BAN",
		StaffUsername:       "OFFICER_1",
	})
	s.Require().NoError(err)

	// The other relationship must not see it.
	_, err = s.service.GetRestriction(s.ctx, second, created.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	found, err := s.service.GetRestriction(s.ctx, first, created.ID)
	s.Require().NoError(err)
	s.Equal("Banned", found.RestrictionTypeDescription)
}

func (s *PrisonerContactSuite) TestMissingRelationshipNamesTheEntity() {
	_, err := s.service.GetRelationship(s.ctx, 42)
	s.Require().Error(err)
	s.Equal("Prisoner contact (42) not found", err.Error())
}

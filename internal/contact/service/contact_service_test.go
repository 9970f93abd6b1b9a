package service

import (
	"time"

	"contactregistry/internal/contact/models"
)

func (s *ServiceSuite) TestCreateContactResolvesCodedAttributes() {
	f := newMemoryFixture()

	details, err := f.service.CreateContact(s.ctx, ContactRequest{
		TitleCode:  "MR",
		LastName:   "Baker",
		FirstName:  "Joan",
		GenderCode: "F",
	})
	s.Require().NoError(err)

	s.Equal("Mr", details.TitleDescription)
	s.Equal("Female", details.GenderDescription)
	s.Equal("JBAKER_GEN", details.CreatedBy)
	s.Equal(fixedTime, details.CreatedTime)
}

func (s *ServiceSuite) TestCreateContactRequiresNames() {
	f := newMemoryFixture()

	_, err := f.service.CreateContact(s.ctx, ContactRequest{FirstName: "Joan"})
	s.Require().Error(err)
	s.Equal("Contact first name and last name are required", err.Error())
}

func (s *ServiceSuite) TestCreateContactRejectsEstimateAlongsideDateOfBirth() {
	f := newMemoryFixture()
	dob := time.Date(1980, 1, 2, 0, 0, 0, 0, time.UTC)

	_, err := f.service.CreateContact(s.ctx, ContactRequest{
		LastName:                "Baker",
		FirstName:               "Joan",
		DateOfBirth:             &dob,
		EstimatedIsOverEighteen: models.OverEighteenYes,
	})
	s.Require().Error(err)
	s.Equal("Estimated over eighteen must not be supplied when the date of birth is known", err.Error())
}

func (s *ServiceSuite) TestUpdateContactNeverRecreates() {
	f := newMemoryFixture()

	_, err := f.service.UpdateContact(s.ctx, 404, ContactRequest{LastName: "Baker", FirstName: "Joan"})
	s.Require().Error(err)
	s.Equal("Contact (404) not found", err.Error())
}

func (s *ServiceSuite) TestGetContactToleratesRetiredCode() {
	f := newMemoryFixture()
	contact := &models.Contact{LastName: "Baker", FirstName: "Joan", GenderCode: "RETIRED"}
	contact.StampCreate("SEED_USER", fixedTime)
	s.Require().NoError(f.contacts.Save(s.ctx, contact))

	details, err := f.service.GetContact(s.ctx, contact.ID)
	s.Require().NoError(err)
	s.Equal("RETIRED", details.GenderCode)
	s.Empty(details.GenderDescription)
}

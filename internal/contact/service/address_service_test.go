package service

import (
	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/requestcontext"
)

func (s *ServiceSuite) TestCreatePrimaryAddressDemotesSiblings() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)

	first, err := f.service.CreateAddress(s.ctx, contactID, AddressRequest{
		Street:   "Acacia Avenue",
		Postcode: "S2 3LK",
		Primary:  true,
	})
	s.Require().NoError(err)
	s.True(first.Primary)

	second, err := f.service.CreateAddress(s.ctx, contactID, AddressRequest{
		Street:   "Beech Road",
		Postcode: "S8 9QT",
		Primary:  true,
	})
	s.Require().NoError(err)
	s.True(second.Primary)

	demoted, err := f.service.GetAddress(s.ctx, contactID, first.ID)
	s.Require().NoError(err)
	s.False(demoted.Primary)
	s.Require().NotNil(demoted.UpdatedBy)
	s.Equal("JBAKER_GEN", *demoted.UpdatedBy)
}

func (s *ServiceSuite) TestUpdateAddressValidatesLocationCodes() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreateAddress(s.ctx, contactID, AddressRequest{Street: "Acacia Avenue"})
	s.Require().NoError(err)

	_, err = f.service.UpdateAddress(s.ctx, contactID, created.ID, AddressRequest{
		Street:   "Acacia Avenue",
		CityCode: "NOWHERE",
	})
	s.Require().Error(err)
	s.Equal("Unsupported city (NOWHERE)", err.Error())
}

func (s *ServiceSuite) TestGetAddressResolvesLocationDescriptions() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreateAddress(s.ctx, contactID, AddressRequest{
		Street:      "Acacia Avenue",
		CityCode:    "SHEF",
		CountyCode:  "SYORKS",
		CountryCode: "ENG",
	})
	s.Require().NoError(err)

	details, err := f.service.GetAddress(s.ctx, contactID, created.ID)
	s.Require().NoError(err)
	s.Equal("Sheffield", details.CityDescription)
	s.Equal("South Yorkshire", details.CountyDescription)
	s.Equal("England", details.CountryDescription)
}

func (s *ServiceSuite) TestVerificationStampedOnlyOnTransition() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreateAddress(s.ctx, contactID, AddressRequest{Street: "Acacia Avenue", Verified: true})
	s.Require().NoError(err)
	s.Equal("JBAKER_GEN", created.VerifiedBy)
	s.Equal(&fixedTime, created.VerifiedTime)

	laterCtx := requestcontext.WithUsername(s.ctx, "SECOND_USER")
	updated, err := f.service.UpdateAddress(laterCtx, contactID, created.ID, AddressRequest{
		Street:   "Acacia Avenue",
		Postcode: "S2 3LK",
		Verified: true,
	})
	s.Require().NoError(err)

	// Already verified: the original verifier stays.
	s.Equal("JBAKER_GEN", updated.VerifiedBy)
}

func (s *ServiceSuite) TestDeleteAddressRemovesItsPhonePairs() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	addressID := f.seedAddress(s.ctx, contactID)
	created, err := f.service.CreateAddressPhone(s.ctx, contactID, addressID, PhoneRequest{
		PhoneTypeCode: "MOB",
		PhoneNumber:   "07700 900000",
	})
	s.Require().NoError(err)

	s.Require().NoError(f.service.DeleteAddress(s.ctx, contactID, addressID))

	_, err = f.phones.FindByID(s.ctx, created.ContactPhone.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	links, err := f.addressPhones.FindAllByAddress(s.ctx, addressID)
	s.Require().NoError(err)
	s.Empty(links)
}

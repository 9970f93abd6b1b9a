package service

import (
	"fmt"
	"time"

	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/requestcontext"
)

func (s *ServiceSuite) TestCreatePhoneRejectsUnknownType() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)

	_, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "SAT", PhoneNumber: "07700 900000"})

	s.Require().Error(err)
	s.Equal("Unsupported phone type (SAT)", err.Error())
}

func (s *ServiceSuite) TestCreatePhoneChecksTypeBeforeNumberFormat() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)

	// Both fields are invalid; the catalogue failure wins.
	_, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "SAT", PhoneNumber: "not-a-number"})

	s.Require().Error(err)
	s.Equal("Unsupported phone type (SAT)", err.Error())
}

func (s *ServiceSuite) TestCreatePhoneRejectsInactiveType() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)

	_, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "FAX", PhoneNumber: "0114 296 0000"})

	s.Require().Error(err)
	s.Equal("Unsupported phone type (FAX)", err.Error())
}

func (s *ServiceSuite) TestUpdatePhoneAcceptsInactiveType() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})
	s.Require().NoError(err)

	updated, err := f.service.UpdatePhone(s.ctx, contactID, created.ID, PhoneRequest{PhoneTypeCode: "FAX", PhoneNumber: "0114 296 0000"})
	s.Require().NoError(err)
	s.Equal("FAX", updated.PhoneTypeCode)
	s.Equal("Fax", updated.PhoneTypeDescription)
}

func (s *ServiceSuite) TestPhoneAuditStampIsImmutableOnUpdate() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})
	s.Require().NoError(err)
	s.Equal("JBAKER_GEN", created.CreatedBy)
	s.Equal(fixedTime, created.CreatedTime)
	s.Nil(created.UpdatedBy)

	laterCtx := requestcontext.WithUsername(s.ctx, "SECOND_USER")
	laterTime := fixedTime.Add(time.Hour)
	laterCtx = requestcontext.WithTime(laterCtx, laterTime)

	updated, err := f.service.UpdatePhone(laterCtx, contactID, created.ID, PhoneRequest{PhoneTypeCode: "HOME", PhoneNumber: "0114 234 5678"})
	s.Require().NoError(err)

	// The creation stamp never changes; only the update stamp moves.
	s.Equal("JBAKER_GEN", updated.CreatedBy)
	s.Equal(fixedTime, updated.CreatedTime)
	s.Require().NotNil(updated.UpdatedBy)
	s.Equal("SECOND_USER", *updated.UpdatedBy)
	s.Equal(&laterTime, updated.UpdatedTime)
}

// Two sequential updates with no version check: the second simply overwrites
// the first. This mirrors the upstream system of record, which has no
// optimistic locking either.
func (s *ServiceSuite) TestPhoneUpdatesAreLastWriterWins() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})
	s.Require().NoError(err)

	firstCtx := requestcontext.WithUsername(s.ctx, "FIRST_USER")
	_, err = f.service.UpdatePhone(firstCtx, contactID, created.ID, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 111111"})
	s.Require().NoError(err)

	secondCtx := requestcontext.WithUsername(s.ctx, "SECOND_USER")
	_, err = f.service.UpdatePhone(secondCtx, contactID, created.ID, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 222222"})
	s.Require().NoError(err)

	final, err := f.service.GetPhone(s.ctx, contactID, created.ID)
	s.Require().NoError(err)
	s.Equal("07700 222222", final.PhoneNumber)
	s.Equal("SECOND_USER", *final.UpdatedBy)
}

func (s *ServiceSuite) TestDeletePhoneThenGetFails() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreatePhone(s.ctx, contactID, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})
	s.Require().NoError(err)

	s.Require().NoError(f.service.DeletePhone(s.ctx, contactID, created.ID))

	_, err = f.service.GetPhone(s.ctx, contactID, created.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// A phone created as the number half of an address-phone pair is still
// reachable through the general phone endpoints. Deleting it there must take
// the link row with it; a link surviving its phone would be an orphaned half
// of the pair.
func (s *ServiceSuite) TestDeletePhoneRemovesAddressLinksWithIt() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	addressID := f.seedAddress(s.ctx, contactID)
	created, err := f.service.CreateAddressPhone(s.ctx, contactID, addressID, PhoneRequest{
		PhoneTypeCode: "HOME",
		PhoneNumber:   "0114 234 5678",
	})
	s.Require().NoError(err)
	linkID := id.ContactAddressPhoneID(created.LinkID)

	s.Require().NoError(f.service.DeletePhone(s.ctx, contactID, created.ContactPhone.ID))

	_, err = f.addressPhones.FindByID(s.ctx, linkID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	_, err = f.service.GetAddressPhone(s.ctx, linkID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal(fmt.Sprintf("Contact address phone (%d) not found", created.LinkID), err.Error())
}

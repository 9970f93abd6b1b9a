package service

import (
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestCreateAddressPhoneWritesBothRowsInLockstep() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	addressID := f.seedAddress(s.ctx, contactID)

	details, err := f.service.CreateAddressPhone(s.ctx, contactID, addressID, PhoneRequest{
		PhoneTypeCode: "MOB",
		PhoneNumber:   "07700 900000",
	})
	s.Require().NoError(err)

	phone, err := f.phones.FindByID(s.ctx, details.ContactPhone.ID)
	s.Require().NoError(err)
	link, err := f.addressPhones.FindByID(s.ctx, id.ContactAddressPhoneID(details.LinkID))
	s.Require().NoError(err)

	s.Equal(phone.ID, link.PhoneID)
	s.Equal(addressID, link.AddressID)
	s.Equal(contactID, link.ContactID)

	// Both rows carry identical audit metadata from the one operation.
	s.Equal("JBAKER_GEN", phone.CreatedBy)
	s.Equal("JBAKER_GEN", link.CreatedBy)
	s.Equal(fixedTime, phone.CreatedTime)
	s.Equal(fixedTime, link.CreatedTime)

	s.Equal("Mobile", details.PhoneTypeDescription)
}

func (s *ServiceSuite) TestUpdateAddressPhoneTouchesOnlyThePhoneRow() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	addressID := f.seedAddress(s.ctx, contactID)
	created, err := f.service.CreateAddressPhone(s.ctx, contactID, addressID, PhoneRequest{
		PhoneTypeCode: "MOB",
		PhoneNumber:   "07700 900000",
	})
	s.Require().NoError(err)

	// FAX is deactivated in the catalogue; edits may still use it.
	updated, err := f.service.UpdateAddressPhone(s.ctx, contactID, id.ContactAddressPhoneID(created.LinkID), PhoneRequest{
		PhoneTypeCode: "FAX",
		PhoneNumber:   "0114 296 0000",
	})
	s.Require().NoError(err)
	s.Equal("FAX", updated.PhoneTypeCode)

	phone, err := f.phones.FindByID(s.ctx, created.ContactPhone.ID)
	s.Require().NoError(err)
	s.Require().NotNil(phone.UpdatedBy)
	s.Equal("JBAKER_GEN", *phone.UpdatedBy)

	link, err := f.addressPhones.FindByID(s.ctx, id.ContactAddressPhoneID(created.LinkID))
	s.Require().NoError(err)
	s.Nil(link.UpdatedBy)
}

func (s *ServiceSuite) TestDeleteAddressPhoneRemovesBothRows() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	addressID := f.seedAddress(s.ctx, contactID)
	created, err := f.service.CreateAddressPhone(s.ctx, contactID, addressID, PhoneRequest{
		PhoneTypeCode: "MOB",
		PhoneNumber:   "07700 900000",
	})
	s.Require().NoError(err)

	s.Require().NoError(f.service.DeleteAddressPhone(s.ctx, contactID, id.ContactAddressPhoneID(created.LinkID)))

	_, err = f.phones.FindByID(s.ctx, created.ContactPhone.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	_, err = f.addressPhones.FindByID(s.ctx, id.ContactAddressPhoneID(created.LinkID))
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ServiceSuite) TestCreateAddressPhoneRejectsBadNumberBeforeAnyWrite() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	addressID := f.seedAddress(s.ctx, contactID)

	_, err := f.service.CreateAddressPhone(s.ctx, contactID, addressID, PhoneRequest{
		PhoneTypeCode: "MOB",
		PhoneNumber:   "0770+900000",
	})
	s.Require().Error(err)
	s.Equal("Phone number invalid, it can only contain numbers, () and whitespace with an optional + at the start", err.Error())

	phones, listErr := f.phones.FindAllByContact(s.ctx, contactID)
	s.Require().NoError(listErr)
	s.Empty(phones)
}

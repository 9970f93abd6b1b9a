package service

import (
	"errors"
	"fmt"

	"go.uber.org/mock/gomock"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/sentinel"
)

// These tests pin the resolution order down the ownership chain: the first
// missing link aborts the operation with an error naming that entity, and no
// store below the broken link is consulted. The gomock controller fails the
// test on any call without an expectation, which is exactly the guarantee we
// want for "never looked below the break".

func (s *ServiceSuite) TestResolutionStopsAtMissingContact() {
	f := newMockFixture(s.ctrl)
	f.contacts.EXPECT().FindByID(gomock.Any(), id.ContactID(99)).Return(nil, sentinel.ErrNotFound)

	_, err := f.service.CreatePhone(s.ctx, 99, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Contact (99) not found", err.Error())
}

func (s *ServiceSuite) TestResolutionStopsAtMissingAddress() {
	f := newMockFixture(s.ctrl)
	contact := &models.Contact{ID: 1, LastName: "Baker", FirstName: "Joan"}
	f.contacts.EXPECT().FindByID(gomock.Any(), id.ContactID(1)).Return(contact, nil)
	f.addresses.EXPECT().FindByContactAndID(gomock.Any(), id.ContactID(1), id.ContactAddressID(5)).Return(nil, sentinel.ErrNotFound)

	_, err := f.service.CreateAddressPhone(s.ctx, 1, 5, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Contact address (5) not found", err.Error())
}

func (s *ServiceSuite) TestDeleteAddressPhoneResolvesFullChainBeforeAnyDelete() {
	f := newMockFixture(s.ctrl)
	contact := &models.Contact{ID: 1, LastName: "Baker", FirstName: "Joan"}
	link := &models.ContactAddressPhone{ID: 7, ContactID: 1, AddressID: 5, PhoneID: 3}
	f.contacts.EXPECT().FindByID(gomock.Any(), id.ContactID(1)).Return(contact, nil)
	f.addressPhones.EXPECT().FindByID(gomock.Any(), id.ContactAddressPhoneID(7)).Return(link, nil)
	f.phones.EXPECT().FindByID(gomock.Any(), id.ContactPhoneID(3)).Return(nil, sentinel.ErrNotFound)

	err := f.service.DeleteAddressPhone(s.ctx, 1, 7)

	s.Require().Error(err)
	s.Equal("Contact phone (3) not found", err.Error())
}

func (s *ServiceSuite) TestGetAddressPhoneReportsDivergenceAsPhoneMiss() {
	f := newMockFixture(s.ctrl)
	link := &models.ContactAddressPhone{ID: 7, ContactID: 1, AddressID: 5, PhoneID: 3}
	f.addressPhones.EXPECT().FindByID(gomock.Any(), id.ContactAddressPhoneID(7)).Return(link, nil)
	f.phones.EXPECT().FindByID(gomock.Any(), id.ContactPhoneID(3)).Return(nil, sentinel.ErrNotFound)

	_, err := f.service.GetAddressPhone(s.ctx, 7)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Contact phone (3) not found", err.Error())
}

func (s *ServiceSuite) TestConstraintViolationSurfacesAsConflict() {
	f := newMockFixture(s.ctrl)
	contact := &models.Contact{ID: 1, LastName: "Baker", FirstName: "Joan"}
	f.contacts.EXPECT().FindByID(gomock.Any(), id.ContactID(1)).Return(contact, nil)
	f.phones.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("duplicate key value violates unique constraint: %w", sentinel.ErrConflict))

	_, err := f.service.CreatePhone(s.ctx, 1, PhoneRequest{PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestStoreFailureSurfacesAsInternal() {
	f := newMockFixture(s.ctrl)
	f.contacts.EXPECT().FindByID(gomock.Any(), id.ContactID(1)).Return(nil, errors.New("db down"))

	_, err := f.service.GetContact(s.ctx, 1)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestSaveAssignsSequentialIDs() {
	store := NewPhoneStore()

	first := &models.ContactPhone{ContactID: 1, PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"}
	second := &models.ContactPhone{ContactID: 1, PhoneTypeCode: "HOME", PhoneNumber: "0114 2345678"}
	s.Require().NoError(store.Save(s.ctx, first))
	s.Require().NoError(store.Save(s.ctx, second))

	s.Equal(id.ContactPhoneID(1), first.ID)
	s.Equal(id.ContactPhoneID(2), second.ID)
}

func (s *MemoryStoreSuite) TestSaveUpdatesExistingRow() {
	store := NewPhoneStore()
	phone := &models.ContactPhone{ContactID: 1, PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"}
	s.Require().NoError(store.Save(s.ctx, phone))

	phone.PhoneNumber = "07700 900001"
	s.Require().NoError(store.Save(s.ctx, phone))

	found, err := store.FindByID(s.ctx, phone.ID)
	s.Require().NoError(err)
	s.Equal("07700 900001", found.PhoneNumber)
}

func (s *MemoryStoreSuite) TestSaveUnknownIDFails() {
	store := NewPhoneStore()
	err := store.Save(s.ctx, &models.ContactPhone{ID: 42, ContactID: 1, PhoneNumber: "999"})
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestParentScopedLookup() {
	store := NewAddressStore()
	address := &models.ContactAddress{ContactID: 7, Street: "Acacia Avenue"}
	s.Require().NoError(store.Save(s.ctx, address))

	found, err := store.FindByContactAndID(s.ctx, 7, address.ID)
	s.Require().NoError(err)
	s.Equal("Acacia Avenue", found.Street)

	// A different contact must not see the row.
	_, err = store.FindByContactAndID(s.ctx, 8, address.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestFindAllReturnsCopies() {
	store := NewEmploymentStore()
	employment := &models.Employment{ContactID: 3, OrganisationID: 9, Active: true}
	employment.StampCreate("CREATOR", time.Now())
	s.Require().NoError(store.Save(s.ctx, employment))

	listed, err := store.FindAllByContact(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)

	listed[0].Active = false

	again, err := store.FindAllByContact(s.ctx, 3)
	s.Require().NoError(err)
	s.True(again[0].Active)
}

func (s *MemoryStoreSuite) TestDeleteByID() {
	store := NewAddressPhoneStore()
	link := &models.ContactAddressPhone{ContactID: 1, AddressID: 2, PhoneID: 3}
	s.Require().NoError(store.Save(s.ctx, link))

	s.Require().NoError(store.DeleteByID(s.ctx, link.ID))
	_, err := store.FindByID(s.ctx, link.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Require().ErrorIs(store.DeleteByID(s.ctx, link.ID), sentinel.ErrNotFound)
}

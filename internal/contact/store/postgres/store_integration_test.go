//go:build integration

package postgres

import (
	"context"
	_ "embed"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/platform/tx"
	"contactregistry/pkg/testutil/containers"
)

//go:embed schema.sql
var schema string

type StoreIntegrationSuite struct {
	suite.Suite
	ctx context.Context
	pg  *containers.PostgresContainer
}

func (s *StoreIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.pg.Exec(s.T(), schema)
}

func (s *StoreIntegrationSuite) TearDownSuite() {
	if s.pg != nil {
		_ = s.pg.DB.Close()
		_ = s.pg.Container.Terminate(s.ctx)
	}
}

func (s *StoreIntegrationSuite) SetupTest() {
	s.pg.Exec(s.T(), `
		TRUNCATE prisoner_contact_restrictions, prisoner_contacts, contact_employments,
			contact_restrictions, contact_identities, contact_emails, contact_address_phones,
			contact_phones, contact_addresses, contacts RESTART IDENTITY CASCADE`)
}

func (s *StoreIntegrationSuite) seedContact() *models.Contact {
	contact := &models.Contact{FirstName: "John", LastName: "Baker"}
	contact.StampCreate("SEED_USER", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	s.Require().NoError(NewContactStore(s.pg.DB).Save(s.ctx, contact))
	return contact
}

func (s *StoreIntegrationSuite) TestContactRoundTrip() {
	store := NewContactStore(s.pg.DB)
	contact := s.seedContact()

	loaded, err := store.FindByID(s.ctx, contact.ID)
	s.Require().NoError(err)
	s.Equal("John", loaded.FirstName)
	s.Equal("SEED_USER", loaded.CreatedBy)
	s.Nil(loaded.UpdatedBy)

	loaded.LastName = "Barker"
	loaded.StampUpdate("EDITOR", time.Now().UTC())
	s.Require().NoError(store.Save(s.ctx, loaded))

	again, err := store.FindByID(s.ctx, contact.ID)
	s.Require().NoError(err)
	s.Equal("Barker", again.LastName)
	s.Require().NotNil(again.UpdatedBy)
	s.Equal("EDITOR", *again.UpdatedBy)
}

func (s *StoreIntegrationSuite) TestMissingRowsReturnSentinel() {
	_, err := NewContactStore(s.pg.DB).FindByID(s.ctx, 9999)
	s.ErrorIs(err, sentinel.ErrNotFound)

	phone := &models.ContactPhone{ID: 9999, PhoneTypeCode: "MOB", PhoneNumber: "07700"}
	s.ErrorIs(NewPhoneStore(s.pg.DB).Save(s.ctx, phone), sentinel.ErrNotFound)

	s.ErrorIs(NewEmploymentStore(s.pg.DB).DeleteByID(s.ctx, 9999), sentinel.ErrNotFound)
}

func (s *StoreIntegrationSuite) TestConstraintViolationsMapToConflict() {
	phones := NewPhoneStore(s.pg.DB)

	// Insert referencing a contact that does not exist.
	orphan := &models.ContactPhone{ContactID: 9999, PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"}
	orphan.StampCreate("SEED_USER", time.Now().UTC())
	s.ErrorIs(phones.Save(s.ctx, orphan), sentinel.ErrConflict)

	// Delete of a phone row still referenced by an address-phone link.
	contact := s.seedContact()
	address := &models.ContactAddress{ContactID: contact.ID, Street: "High Street"}
	address.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(NewAddressStore(s.pg.DB).Save(s.ctx, address))

	phone := &models.ContactPhone{ContactID: contact.ID, PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"}
	phone.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(phones.Save(s.ctx, phone))

	link := &models.ContactAddressPhone{ContactID: contact.ID, AddressID: address.ID, PhoneID: phone.ID}
	link.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(NewAddressPhoneStore(s.pg.DB).Save(s.ctx, link))

	s.ErrorIs(phones.DeleteByID(s.ctx, phone.ID), sentinel.ErrConflict)
}

func (s *StoreIntegrationSuite) TestTransactionRollbackLeavesNoRows() {
	contact := s.seedContact()

	phones := NewPhoneStore(s.pg.DB)
	links := NewAddressPhoneStore(s.pg.DB)
	runner := tx.NewSQLRunner(s.pg.DB)

	boom := errors.New("boom")
	err := runner.RunInTx(s.ctx, func(ctx context.Context) error {
		phone := &models.ContactPhone{ContactID: contact.ID, PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"}
		phone.StampCreate("SEED_USER", time.Now().UTC())
		if err := phones.Save(ctx, phone); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	remaining, err := phones.FindAllByContact(s.ctx, contact.ID)
	s.Require().NoError(err)
	s.Empty(remaining)

	// The committed path persists both rows of the pair.
	address := &models.ContactAddress{ContactID: contact.ID, Street: "High Street"}
	address.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(NewAddressStore(s.pg.DB).Save(s.ctx, address))

	err = runner.RunInTx(s.ctx, func(ctx context.Context) error {
		phone := &models.ContactPhone{ContactID: contact.ID, PhoneTypeCode: "MOB", PhoneNumber: "07700 900000"}
		phone.StampCreate("SEED_USER", time.Now().UTC())
		if err := phones.Save(ctx, phone); err != nil {
			return err
		}
		link := &models.ContactAddressPhone{ContactID: contact.ID, AddressID: address.ID, PhoneID: phone.ID}
		link.StampCreate("SEED_USER", time.Now().UTC())
		return links.Save(ctx, link)
	})
	s.Require().NoError(err)

	pair, err := links.FindAllByAddress(s.ctx, address.ID)
	s.Require().NoError(err)
	s.Len(pair, 1)
}

func (s *StoreIntegrationSuite) TestEmploymentsListInInsertionOrder() {
	contact := s.seedContact()
	store := NewEmploymentStore(s.pg.DB)

	for _, orgID := range []id.OrganisationID{30, 10, 20} {
		employment := &models.Employment{ContactID: contact.ID, OrganisationID: orgID, Active: true}
		employment.StampCreate("SEED_USER", time.Now().UTC())
		s.Require().NoError(store.Save(s.ctx, employment))
	}

	employments, err := store.FindAllByContact(s.ctx, contact.ID)
	s.Require().NoError(err)
	s.Require().Len(employments, 3)
	s.Equal(id.OrganisationID(30), employments[0].OrganisationID)
	s.Equal(id.OrganisationID(20), employments[2].OrganisationID)
}

func (s *StoreIntegrationSuite) TestPrisonerContactRestrictionScoping() {
	contact := s.seedContact()

	relationships := NewPrisonerContactStore(s.pg.DB)
	first := &models.PrisonerContact{ContactID: contact.ID, PrisonerNumber: "A1234BC", RelationshipTypeCode: "FRI", Active: true}
	first.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(relationships.Save(s.ctx, first))

	second := &models.PrisonerContact{ContactID: contact.ID, PrisonerNumber: "A1234BC", RelationshipTypeCode: "BRO", Active: true}
	second.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(relationships.Save(s.ctx, second))

	restrictions := NewPrisonerContactRestrictionStore(s.pg.DB)
	restriction := &models.PrisonerContactRestriction{PrisonerContactID: first.ID, RestrictionTypeCode: "BAN"}
	restriction.StampCreate("SEED_USER", time.Now().UTC())
	s.Require().NoError(restrictions.Save(s.ctx, restriction))

	_, err := restrictions.FindByRelationshipAndID(s.ctx, second.ID, restriction.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	found, err := restrictions.FindByRelationshipAndID(s.ctx, first.ID, restriction.ID)
	s.Require().NoError(err)
	s.Equal("BAN", found.RestrictionTypeCode)

	byPrisoner, err := relationships.FindAllByPrisoner(s.ctx, "A1234BC")
	s.Require().NoError(err)
	s.Len(byPrisoner, 2)
}

func TestStoreIntegrationSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationSuite))
}

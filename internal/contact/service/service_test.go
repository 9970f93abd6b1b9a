package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/contact/service/mocks"
	"contactregistry/internal/contact/store/memory"
	"contactregistry/internal/organisation"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/requestcontext"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// testContext injects the actor and operation time every mutation reads.
func testContext() context.Context {
	ctx := requestcontext.WithUsername(context.Background(), "JBAKER_GEN")
	return requestcontext.WithTime(ctx, fixedTime)
}

// testCatalogue seeds the reference codes the tests exercise, including one
// deactivated code per validated group.
func testCatalogue() *referencedata.Validator {
	codes := referencedata.NewInMemory()
	put := func(group referencedata.Group, code, description string, active bool) {
		codes.Put(&referencedata.Code{Group: group, Code: code, Description: description, Active: active})
	}
	put(referencedata.GroupPhoneType, "MOB", "Mobile", true)
	put(referencedata.GroupPhoneType, "HOME", "Home", true)
	put(referencedata.GroupPhoneType, "FAX", "Fax", false)
	put(referencedata.GroupIdentityType, "DL", "Driving licence", true)
	put(referencedata.GroupIdentityType, "NHS", "NHS number", false)
	put(referencedata.GroupRestrictionType, "BAN", "Banned", true)
	put(referencedata.GroupRestrictionType, "CCTV", "CCTV supervision", false)
	put(referencedata.GroupTitle, "MR", "Mr", true)
	put(referencedata.GroupGender, "F", "Female", true)
	put(referencedata.GroupCity, "SHEF", "Sheffield", true)
	put(referencedata.GroupCounty, "SYORKS", "South Yorkshire", true)
	put(referencedata.GroupCountry, "ENG", "England", true)
	return referencedata.NewValidator(codes)
}

// memoryFixture wires the service to real in-memory stores. Used where the
// interesting behavior is the data that ends up persisted.
type memoryFixture struct {
	service       *Service
	contacts      *memory.ContactStore
	addresses     *memory.AddressStore
	phones        *memory.PhoneStore
	addressPhones *memory.AddressPhoneStore
	emails        *memory.EmailStore
	identities    *memory.IdentityStore
	restrictions  *memory.RestrictionStore
	employments   *memory.EmploymentStore
	organisations *organisation.InMemory
	published     *events.RecordingPublisher
}

func newMemoryFixture() *memoryFixture {
	f := &memoryFixture{
		contacts:      memory.NewContactStore(),
		addresses:     memory.NewAddressStore(),
		phones:        memory.NewPhoneStore(),
		addressPhones: memory.NewAddressPhoneStore(),
		emails:        memory.NewEmailStore(),
		identities:    memory.NewIdentityStore(),
		restrictions:  memory.NewRestrictionStore(),
		employments:   memory.NewEmploymentStore(),
		organisations: organisation.NewInMemory(),
		published:     events.NewRecordingPublisher(),
	}
	f.service = New(Stores{
		Contacts:      f.contacts,
		Addresses:     f.addresses,
		Phones:        f.phones,
		AddressPhones: f.addressPhones,
		Emails:        f.emails,
		Identities:    f.identities,
		Restrictions:  f.restrictions,
		Employments:   f.employments,
	}, f.organisations, testCatalogue(), WithEventPublisher(f.published))
	return f
}

// seedContact persists a minimal contact and returns its id.
func (f *memoryFixture) seedContact(ctx context.Context) id.ContactID {
	contact := &models.Contact{LastName: "Baker", FirstName: "Joan"}
	contact.StampCreate("SEED_USER", fixedTime.Add(-24*time.Hour))
	if err := f.contacts.Save(ctx, contact); err != nil {
		panic(err)
	}
	return contact.ID
}

func (f *memoryFixture) seedAddress(ctx context.Context, contactID id.ContactID) id.ContactAddressID {
	address := &models.ContactAddress{ContactID: contactID, Street: "Acacia Avenue", Postcode: "S2 3LK"}
	address.StampCreate("SEED_USER", fixedTime.Add(-24*time.Hour))
	if err := f.addresses.Save(ctx, address); err != nil {
		panic(err)
	}
	return address.ID
}

// mockFixture wires the service to gomock stores. Used where the interesting
// behavior is which stores are consulted, and in what order; any store call
// without an expectation fails the test.
type mockFixture struct {
	service       *Service
	contacts      *mocks.MockContactStore
	addresses     *mocks.MockAddressStore
	phones        *mocks.MockPhoneStore
	addressPhones *mocks.MockAddressPhoneStore
	emails        *mocks.MockEmailStore
	identities    *mocks.MockIdentityStore
	restrictions  *mocks.MockRestrictionStore
	employments   *mocks.MockEmploymentStore
}

func newMockFixture(ctrl *gomock.Controller) *mockFixture {
	f := &mockFixture{
		contacts:      mocks.NewMockContactStore(ctrl),
		addresses:     mocks.NewMockAddressStore(ctrl),
		phones:        mocks.NewMockPhoneStore(ctrl),
		addressPhones: mocks.NewMockAddressPhoneStore(ctrl),
		emails:        mocks.NewMockEmailStore(ctrl),
		identities:    mocks.NewMockIdentityStore(ctrl),
		restrictions:  mocks.NewMockRestrictionStore(ctrl),
		employments:   mocks.NewMockEmploymentStore(ctrl),
	}
	f.service = New(Stores{
		Contacts:      f.contacts,
		Addresses:     f.addresses,
		Phones:        f.phones,
		AddressPhones: f.addressPhones,
		Emails:        f.emails,
		Identities:    f.identities,
		Restrictions:  f.restrictions,
		Employments:   f.employments,
	}, organisation.NewInMemory(), testCatalogue())
	return f
}

type ServiceSuite struct {
	suite.Suite
	ctx  context.Context
	ctrl *gomock.Controller
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = testContext()
	s.ctrl = gomock.NewController(s.T())
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

// Package service implements the consistency layer for a contact's dependent
// records: ordered existence checks down the ownership chain, payload
// validation before any write, the dual-row address-phone lifecycle, and the
// employment reconciliation batch.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/organisation"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/platform/metrics"
	"contactregistry/internal/referencedata"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/tx"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Store interfaces are defined here, at the point of use. Implementations
// return sentinel.ErrNotFound for missing rows; the service translates those
// into domain errors naming the entity kind and id.
//
// Save inserts when the entity id is zero and updates otherwise. Updates are
// last-writer-wins: there is no version column, matching the system of record
// this registry reconciles against.

type ContactStore interface {
	Save(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, contactID id.ContactID) (*models.Contact, error)
}

type AddressStore interface {
	Save(ctx context.Context, address *models.ContactAddress) error
	FindByContactAndID(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) (*models.ContactAddress, error)
	FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactAddress, error)
	DeleteByID(ctx context.Context, addressID id.ContactAddressID) error
}

type PhoneStore interface {
	Save(ctx context.Context, phone *models.ContactPhone) error
	FindByID(ctx context.Context, phoneID id.ContactPhoneID) (*models.ContactPhone, error)
	FindByContactAndID(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) (*models.ContactPhone, error)
	FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactPhone, error)
	DeleteByID(ctx context.Context, phoneID id.ContactPhoneID) error
}

type AddressPhoneStore interface {
	Save(ctx context.Context, link *models.ContactAddressPhone) error
	FindByID(ctx context.Context, linkID id.ContactAddressPhoneID) (*models.ContactAddressPhone, error)
	FindAllByAddress(ctx context.Context, addressID id.ContactAddressID) ([]*models.ContactAddressPhone, error)
	FindAllByPhone(ctx context.Context, phoneID id.ContactPhoneID) ([]*models.ContactAddressPhone, error)
	DeleteByID(ctx context.Context, linkID id.ContactAddressPhoneID) error
}

type EmailStore interface {
	Save(ctx context.Context, email *models.ContactEmail) error
	FindByContactAndID(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) (*models.ContactEmail, error)
	FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactEmail, error)
	DeleteByID(ctx context.Context, emailID id.ContactEmailID) error
}

type IdentityStore interface {
	Save(ctx context.Context, identity *models.ContactIdentity) error
	FindByContactAndID(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) (*models.ContactIdentity, error)
	FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactIdentity, error)
	DeleteByID(ctx context.Context, identityID id.ContactIdentityID) error
}

type RestrictionStore interface {
	Save(ctx context.Context, restriction *models.ContactRestriction) error
	FindByContactAndID(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) (*models.ContactRestriction, error)
	FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.ContactRestriction, error)
	DeleteByID(ctx context.Context, restrictionID id.ContactRestrictionID) error
}

type EmploymentStore interface {
	Save(ctx context.Context, employment *models.Employment) error
	FindAllByContact(ctx context.Context, contactID id.ContactID) ([]*models.Employment, error)
	DeleteByID(ctx context.Context, employmentID id.EmploymentID) error
}

// EventPublisher receives domain events after successful mutations. Emission
// failures are logged, never surfaced: the write has already committed.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Stores bundles the per-entity repositories the service writes through.
type Stores struct {
	Contacts      ContactStore
	Addresses     AddressStore
	Phones        PhoneStore
	AddressPhones AddressPhoneStore
	Emails        EmailStore
	Identities    IdentityStore
	Restrictions  RestrictionStore
	Employments   EmploymentStore
}

// Service orchestrates contact sub-entity mutations.
type Service struct {
	stores        Stores
	organisations organisation.SummaryStore
	refdata       *referencedata.Validator
	runner        tx.Runner
	logger        *slog.Logger
	metrics       *metrics.Metrics
	events        EventPublisher
	tracer        trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithEventPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.events = publisher
	}
}

// WithTxRunner replaces the default pass-through runner with one that wraps
// multi-row writes in a database transaction.
func WithTxRunner(runner tx.Runner) Option {
	return func(s *Service) {
		s.runner = runner
	}
}

// New constructs the contact service.
func New(stores Stores, organisations organisation.SummaryStore, refdata *referencedata.Validator, opts ...Option) *Service {
	s := &Service{
		stores:        stores,
		organisations: organisations,
		refdata:       refdata,
		runner:        tx.NewPassthroughRunner(),
		logger:        slog.Default(),
		tracer:        otel.Tracer("contactregistry/contact"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

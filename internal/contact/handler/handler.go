// Package handler exposes the contact endpoints. Handlers decode, delegate
// to the service and translate domain errors; no business rules live here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"contactregistry/internal/contact/models"
	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
)

// Service defines the contact operations the HTTP layer depends on.
type Service interface {
	CreateContact(ctx context.Context, req service.ContactRequest) (*service.ContactDetails, error)
	GetContact(ctx context.Context, contactID id.ContactID) (*service.ContactDetails, error)
	UpdateContact(ctx context.Context, contactID id.ContactID, req service.ContactRequest) (*service.ContactDetails, error)

	CreatePhone(ctx context.Context, contactID id.ContactID, req service.PhoneRequest) (*service.PhoneDetails, error)
	GetPhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) (*service.PhoneDetails, error)
	ListPhones(ctx context.Context, contactID id.ContactID) ([]*service.PhoneDetails, error)
	UpdatePhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID, req service.PhoneRequest) (*service.PhoneDetails, error)
	DeletePhone(ctx context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) error

	CreateAddress(ctx context.Context, contactID id.ContactID, req service.AddressRequest) (*service.AddressDetails, error)
	GetAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) (*service.AddressDetails, error)
	ListAddresses(ctx context.Context, contactID id.ContactID) ([]*service.AddressDetails, error)
	UpdateAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID, req service.AddressRequest) (*service.AddressDetails, error)
	DeleteAddress(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID) error

	CreateAddressPhone(ctx context.Context, contactID id.ContactID, addressID id.ContactAddressID, req service.PhoneRequest) (*service.AddressPhoneDetails, error)
	GetAddressPhone(ctx context.Context, linkID id.ContactAddressPhoneID) (*service.AddressPhoneDetails, error)
	UpdateAddressPhone(ctx context.Context, contactID id.ContactID, linkID id.ContactAddressPhoneID, req service.PhoneRequest) (*service.AddressPhoneDetails, error)
	DeleteAddressPhone(ctx context.Context, contactID id.ContactID, linkID id.ContactAddressPhoneID) error

	CreateEmail(ctx context.Context, contactID id.ContactID, req service.EmailRequest) (*models.ContactEmail, error)
	GetEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) (*models.ContactEmail, error)
	UpdateEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID, req service.EmailRequest) (*models.ContactEmail, error)
	DeleteEmail(ctx context.Context, contactID id.ContactID, emailID id.ContactEmailID) error

	CreateIdentity(ctx context.Context, contactID id.ContactID, req service.IdentityRequest) (*service.IdentityDetails, error)
	GetIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) (*service.IdentityDetails, error)
	UpdateIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID, req service.IdentityRequest) (*service.IdentityDetails, error)
	DeleteIdentity(ctx context.Context, contactID id.ContactID, identityID id.ContactIdentityID) error

	CreateRestriction(ctx context.Context, contactID id.ContactID, req service.RestrictionRequest) (*service.RestrictionDetails, error)
	GetRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) (*service.RestrictionDetails, error)
	ListRestrictions(ctx context.Context, contactID id.ContactID) ([]*service.RestrictionDetails, error)
	UpdateRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID, req service.RestrictionRequest) (*service.RestrictionDetails, error)
	DeleteRestriction(ctx context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) error

	ListEmployments(ctx context.Context, contactID id.ContactID) ([]*service.EmploymentDetails, error)
	PatchEmployments(ctx context.Context, contactID id.ContactID, req service.PatchEmploymentsRequest) (*service.PatchEmploymentsResponse, error)
}

// Handler serves the contact routes.
type Handler struct {
	contacts Service
	logger   *slog.Logger
}

func New(contacts Service, logger *slog.Logger) *Handler {
	return &Handler{contacts: contacts, logger: logger}
}

// Register mounts the contact routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", h.handleCreateContact)
		r.Route("/{contactID}", func(r chi.Router) {
			r.Get("/", h.handleGetContact)
			r.Put("/", h.handleUpdateContact)

			r.Route("/phones", func(r chi.Router) {
				r.Post("/", h.handleCreatePhone)
				r.Get("/", h.handleListPhones)
				r.Get("/{phoneID}", h.handleGetPhone)
				r.Put("/{phoneID}", h.handleUpdatePhone)
				r.Delete("/{phoneID}", h.handleDeletePhone)
			})

			r.Route("/addresses", func(r chi.Router) {
				r.Post("/", h.handleCreateAddress)
				r.Get("/", h.handleListAddresses)
				r.Get("/{addressID}", h.handleGetAddress)
				r.Put("/{addressID}", h.handleUpdateAddress)
				r.Delete("/{addressID}", h.handleDeleteAddress)
				r.Post("/{addressID}/phones", h.handleCreateAddressPhone)
			})

			r.Route("/address-phones", func(r chi.Router) {
				r.Get("/{addressPhoneID}", h.handleGetAddressPhone)
				r.Put("/{addressPhoneID}", h.handleUpdateAddressPhone)
				r.Delete("/{addressPhoneID}", h.handleDeleteAddressPhone)
			})

			r.Route("/emails", func(r chi.Router) {
				r.Post("/", h.handleCreateEmail)
				r.Get("/{emailID}", h.handleGetEmail)
				r.Put("/{emailID}", h.handleUpdateEmail)
				r.Delete("/{emailID}", h.handleDeleteEmail)
			})

			r.Route("/identities", func(r chi.Router) {
				r.Post("/", h.handleCreateIdentity)
				r.Get("/{identityID}", h.handleGetIdentity)
				r.Put("/{identityID}", h.handleUpdateIdentity)
				r.Delete("/{identityID}", h.handleDeleteIdentity)
			})

			r.Route("/restrictions", func(r chi.Router) {
				r.Post("/", h.handleCreateRestriction)
				r.Get("/", h.handleListRestrictions)
				r.Get("/{restrictionID}", h.handleGetRestriction)
				r.Put("/{restrictionID}", h.handleUpdateRestriction)
				r.Delete("/{restrictionID}", h.handleDeleteRestriction)
			})

			r.Route("/employments", func(r chi.Router) {
				r.Get("/", h.handleListEmployments)
				r.Patch("/", h.handlePatchEmployments)
			})
		})
	})
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid %s", name)
	}
	return v, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

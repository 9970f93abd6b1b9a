// Package handler exposes the prisoner relationship endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"contactregistry/internal/prisonercontact"
	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/httputil"
)

// Service defines the relationship operations the HTTP layer depends on.
type Service interface {
	CreateRelationship(ctx context.Context, req prisonercontact.RelationshipRequest) (*prisonercontact.RelationshipDetails, error)
	GetRelationship(ctx context.Context, relationshipID id.PrisonerContactID) (*prisonercontact.RelationshipDetails, error)
	ListByPrisoner(ctx context.Context, prisonerNumber string) ([]*prisonercontact.RelationshipDetails, error)
	UpdateRelationship(ctx context.Context, relationshipID id.PrisonerContactID, req prisonercontact.RelationshipRequest) (*prisonercontact.RelationshipDetails, error)

	CreateRestriction(ctx context.Context, relationshipID id.PrisonerContactID, req prisonercontact.RestrictionRequest) (*prisonercontact.RestrictionDetails, error)
	GetRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) (*prisonercontact.RestrictionDetails, error)
	ListRestrictions(ctx context.Context, relationshipID id.PrisonerContactID) ([]*prisonercontact.RestrictionDetails, error)
	UpdateRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID, req prisonercontact.RestrictionRequest) (*prisonercontact.RestrictionDetails, error)
	DeleteRestriction(ctx context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) error
}

// Handler serves the prisoner relationship routes.
type Handler struct {
	relationships Service
	logger        *slog.Logger
}

func New(relationships Service, logger *slog.Logger) *Handler {
	return &Handler{relationships: relationships, logger: logger}
}

// Register mounts the relationship routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/prisoner-contacts", func(r chi.Router) {
		r.Post("/", h.handleCreateRelationship)
		r.Get("/prisoner/{prisonerNumber}", h.handleListByPrisoner)
		r.Route("/{relationshipID}", func(r chi.Router) {
			r.Get("/", h.handleGetRelationship)
			r.Put("/", h.handleUpdateRelationship)

			r.Route("/restrictions", func(r chi.Router) {
				r.Post("/", h.handleCreateRestriction)
				r.Get("/", h.handleListRestrictions)
				r.Get("/{restrictionID}", h.handleGetRestriction)
				r.Put("/{restrictionID}", h.handleUpdateRestriction)
				r.Delete("/{restrictionID}", h.handleDeleteRestriction)
			})
		})
	})
}

func (h *Handler) handleCreateRelationship(w http.ResponseWriter, r *http.Request) {
	var req prisonercontact.RelationshipRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.CreateRelationship(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleGetRelationship(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.GetRelationship(r.Context(), id.PrisonerContactID(relationshipID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleListByPrisoner(w http.ResponseWriter, r *http.Request) {
	prisonerNumber := chi.URLParam(r, "prisonerNumber")
	if prisonerNumber == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid prisoner number"))
		return
	}

	details, err := h.relationships.ListByPrisoner(r.Context(), prisonerNumber)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateRelationship(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req prisonercontact.RelationshipRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.UpdateRelationship(r.Context(), id.PrisonerContactID(relationshipID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleCreateRestriction(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req prisonercontact.RestrictionRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.CreateRestriction(r.Context(), id.PrisonerContactID(relationshipID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleListRestrictions(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.ListRestrictions(r.Context(), id.PrisonerContactID(relationshipID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleGetRestriction(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	restrictionID, err := pathID(r, "restrictionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.GetRestriction(r.Context(), id.PrisonerContactID(relationshipID), id.PrisonerContactRestrictionID(restrictionID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateRestriction(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	restrictionID, err := pathID(r, "restrictionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req prisonercontact.RestrictionRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.relationships.UpdateRestriction(r.Context(), id.PrisonerContactID(relationshipID), id.PrisonerContactRestrictionID(restrictionID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleDeleteRestriction(w http.ResponseWriter, r *http.Request) {
	relationshipID, err := pathID(r, "relationshipID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	restrictionID, err := pathID(r, "restrictionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.relationships.DeleteRestriction(r.Context(), id.PrisonerContactID(relationshipID), id.PrisonerContactRestrictionID(restrictionID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
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

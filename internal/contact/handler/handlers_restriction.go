package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleCreateRestriction(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.RestrictionRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.CreateRestriction(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleListRestrictions(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.ListRestrictions(r.Context(), id.ContactID(contactID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleGetRestriction(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	restrictionID, err := pathID(r, "restrictionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.GetRestriction(r.Context(), id.ContactID(contactID), id.ContactRestrictionID(restrictionID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateRestriction(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	restrictionID, err := pathID(r, "restrictionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.RestrictionRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.UpdateRestriction(r.Context(), id.ContactID(contactID), id.ContactRestrictionID(restrictionID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleDeleteRestriction(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	restrictionID, err := pathID(r, "restrictionID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.contacts.DeleteRestriction(r.Context(), id.ContactID(contactID), id.ContactRestrictionID(restrictionID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

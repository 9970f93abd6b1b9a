package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleCreateIdentity(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.IdentityRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.CreateIdentity(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleGetIdentity(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	identityID, err := pathID(r, "identityID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.GetIdentity(r.Context(), id.ContactID(contactID), id.ContactIdentityID(identityID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateIdentity(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	identityID, err := pathID(r, "identityID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.IdentityRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.UpdateIdentity(r.Context(), id.ContactID(contactID), id.ContactIdentityID(identityID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleDeleteIdentity(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	identityID, err := pathID(r, "identityID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.contacts.DeleteIdentity(r.Context(), id.ContactID(contactID), id.ContactIdentityID(identityID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

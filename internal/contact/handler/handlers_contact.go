package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.CreateContact(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleGetContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.GetContact(r.Context(), id.ContactID(contactID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.ContactRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.UpdateContact(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleCreateEmail(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.EmailRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	email, err := h.contacts.CreateEmail(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, email)
}

func (h *Handler) handleGetEmail(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	emailID, err := pathID(r, "emailID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	email, err := h.contacts.GetEmail(r.Context(), id.ContactID(contactID), id.ContactEmailID(emailID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, email)
}

func (h *Handler) handleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	emailID, err := pathID(r, "emailID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.EmailRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	email, err := h.contacts.UpdateEmail(r.Context(), id.ContactID(contactID), id.ContactEmailID(emailID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, email)
}

func (h *Handler) handleDeleteEmail(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	emailID, err := pathID(r, "emailID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.contacts.DeleteEmail(r.Context(), id.ContactID(contactID), id.ContactEmailID(emailID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

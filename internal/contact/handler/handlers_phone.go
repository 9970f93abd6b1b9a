package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleCreatePhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.PhoneRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.CreatePhone(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleListPhones(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.ListPhones(r.Context(), id.ContactID(contactID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleGetPhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	phoneID, err := pathID(r, "phoneID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.GetPhone(r.Context(), id.ContactID(contactID), id.ContactPhoneID(phoneID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdatePhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	phoneID, err := pathID(r, "phoneID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.PhoneRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.UpdatePhone(r.Context(), id.ContactID(contactID), id.ContactPhoneID(phoneID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleDeletePhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	phoneID, err := pathID(r, "phoneID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.contacts.DeletePhone(r.Context(), id.ContactID(contactID), id.ContactPhoneID(phoneID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

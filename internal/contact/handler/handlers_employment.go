package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleListEmployments(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.ListEmployments(r.Context(), id.ContactID(contactID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handlePatchEmployments(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.PatchEmploymentsRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp, err := h.contacts.PatchEmployments(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"contactregistry/internal/contact/service"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/httputil"
)

func (h *Handler) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.AddressRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.CreateAddress(r.Context(), id.ContactID(contactID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.ListAddresses(r.Context(), id.ContactID(contactID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	addressID, err := pathID(r, "addressID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.GetAddress(r.Context(), id.ContactID(contactID), id.ContactAddressID(addressID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	addressID, err := pathID(r, "addressID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.AddressRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.UpdateAddress(r.Context(), id.ContactID(contactID), id.ContactAddressID(addressID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	addressID, err := pathID(r, "addressID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.contacts.DeleteAddress(r.Context(), id.ContactID(contactID), id.ContactAddressID(addressID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateAddressPhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	addressID, err := pathID(r, "addressID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.PhoneRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.CreateAddressPhone(r.Context(), id.ContactID(contactID), id.ContactAddressID(addressID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

func (h *Handler) handleGetAddressPhone(w http.ResponseWriter, r *http.Request) {
	// The link id is globally unique; the contact id in the path is not
	// needed to resolve it.
	linkID, err := pathID(r, "addressPhoneID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.GetAddressPhone(r.Context(), id.ContactAddressPhoneID(linkID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdateAddressPhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	linkID, err := pathID(r, "addressPhoneID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req service.PhoneRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.contacts.UpdateAddressPhone(r.Context(), id.ContactID(contactID), id.ContactAddressPhoneID(linkID), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleDeleteAddressPhone(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathID(r, "contactID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	linkID, err := pathID(r, "addressPhoneID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.contacts.DeleteAddressPhone(r.Context(), id.ContactID(contactID), id.ContactAddressPhoneID(linkID)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Package handler exposes the reference-data catalogue as a thin read API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"contactregistry/internal/referencedata"
	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/httputil"
)

// Handler serves the reference code listings clients use to populate
// dropdowns. It reads straight from the store; there is no service layer
// because there are no rules beyond group membership.
type Handler struct {
	codes  referencedata.Store
	logger *slog.Logger
}

func New(codes referencedata.Store, logger *slog.Logger) *Handler {
	return &Handler{codes: codes, logger: logger}
}

// Register mounts the reference-data routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/reference-codes/{group}", h.handleListByGroup)
}

func (h *Handler) handleListByGroup(w http.ResponseWriter, r *http.Request) {
	group := referencedata.Group(strings.ToUpper(chi.URLParam(r, "group")))

	codes, err := h.codes.ListByGroup(r.Context(), group)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "reference code listing failed",
			"group", string(group),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list reference codes"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, codes)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/service"
)

// InkFillHandler serves the cross-printer ink fill listing.
type InkFillHandler struct {
	inkFillService *service.InkFillService
	logger         zerolog.Logger
}

// NewInkFillHandler creates a new InkFillHandler.
func NewInkFillHandler(inkFillService *service.InkFillService, logger zerolog.Logger) *InkFillHandler {
	return &InkFillHandler{
		inkFillService: inkFillService,
		logger:         logger.With().Str("handler", "inkfill").Logger(),
	}
}

// RegisterRoutes registers the ink fill routes. All require authentication.
func (h *InkFillHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ink-fills", h.handleListAll)
}

// handleListAll returns every fill record of the caller, most recent first.
func (h *InkFillHandler) handleListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.inkFillService.ListAll(r.Context(), mustOwner(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

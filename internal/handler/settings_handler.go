package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/service"
)

// SettingsHandler serves per-owner cost-calculation settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          zerolog.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger.With().Str("handler", "settings").Logger(),
	}
}

// RegisterRoutes registers the settings routes. All require authentication.
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Post("/", h.handleUpdate)
	})
}

// handleGet returns the caller's settings, lazily creating the defaults on
// first read.
func (h *SettingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context(), mustOwner(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type settingsUpdateRequest struct {
	CostCoefficient float64 `json:"cost_coefficient"`
	CurrencySymbol  string  `json:"currency_symbol"`
}

// handleUpdate upserts the caller's settings.
func (h *SettingsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req settingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	settings, err := h.settingsService.Update(r.Context(), mustOwner(r), req.CostCoefficient, req.CurrencySymbol)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

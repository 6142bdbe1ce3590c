package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/service"
)

// InventoryHandler serves the ink inventory ledger.
type InventoryHandler struct {
	inventoryService *service.InventoryService
	logger           zerolog.Logger
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService *service.InventoryService, logger zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger.With().Str("handler", "inventory").Logger(),
	}
}

// RegisterRoutes registers the inventory routes. All require authentication.
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

// handleCreate adds a new inventory item for the caller.
func (h *InventoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.inventoryService.Create(r.Context(), mustOwner(r), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleList returns all of the caller's inventory items.
func (h *InventoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.List(r.Context(), mustOwner(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleUpdate applies a merge patch to an inventory item.
func (h *InventoryHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.InventoryPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.inventoryService.Update(r.Context(), mustOwner(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleDelete removes an inventory item.
func (h *InventoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.Delete(r.Context(), mustOwner(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

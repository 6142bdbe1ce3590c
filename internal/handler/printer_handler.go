package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/service"
)

// PrinterHandler serves printer CRUD and the printer-scoped ink fill routes.
type PrinterHandler struct {
	printerService *service.PrinterService
	inkFillService *service.InkFillService
	logger         zerolog.Logger
}

// NewPrinterHandler creates a new PrinterHandler.
func NewPrinterHandler(printerService *service.PrinterService, inkFillService *service.InkFillService, logger zerolog.Logger) *PrinterHandler {
	return &PrinterHandler{
		printerService: printerService,
		inkFillService: inkFillService,
		logger:         logger.With().Str("handler", "printer").Logger(),
	}
}

// RegisterRoutes registers the printer routes. All require authentication.
func (h *PrinterHandler) RegisterRoutes(r chi.Router) {
	r.Route("/printers", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)

		r.Post("/{id}/ink-fill", h.handleRecordInkFill)
		r.Get("/{id}/ink-fills", h.handleListInkFills)
	})
}

// handleCreate registers a new printer for the caller.
func (h *PrinterHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	owner := mustOwner(r)

	var printer domain.Printer
	if err := decodeJSON(r, &printer); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.printerService.Create(r.Context(), owner, &printer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleList returns all of the caller's printers.
func (h *PrinterHandler) handleList(w http.ResponseWriter, r *http.Request) {
	printers, err := h.printerService.List(r.Context(), mustOwner(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, printers)
}

// handleGet returns a single printer by id.
func (h *PrinterHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	printer, err := h.printerService.Get(r.Context(), mustOwner(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, printer)
}

// handleUpdate replaces a printer's mutable fields.
func (h *PrinterHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var printer domain.Printer
	if err := decodeJSON(r, &printer); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.printerService.Update(r.Context(), mustOwner(r), chi.URLParam(r, "id"), &printer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDelete removes a printer.
func (h *PrinterHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.printerService.Delete(r.Context(), mustOwner(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type inkFillRequest struct {
	Color        string  `json:"color"`
	AmountLiters float64 `json:"amount_liters"`
}

type inkFillResponse struct {
	Message  string `json:"message"`
	RecordID string `json:"record_id"`
}

// handleRecordInkFill records a manual ink fill against one of the
// printer's channels.
func (h *PrinterHandler) handleRecordInkFill(w http.ResponseWriter, r *http.Request) {
	var req inkFillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	record, err := h.inkFillService.Record(r.Context(), mustOwner(r), chi.URLParam(r, "id"), req.Color, req.AmountLiters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inkFillResponse{
		Message:  "Ink fill recorded successfully",
		RecordID: record.ID,
	})
}

// handleListInkFills returns the printer's fill records, most recent first.
func (h *PrinterHandler) handleListInkFills(w http.ResponseWriter, r *http.Request) {
	records, err := h.inkFillService.ListForPrinter(r.Context(), mustOwner(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

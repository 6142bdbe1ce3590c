package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/service"
)

// JobHandler serves print job upload and retrieval.
type JobHandler struct {
	jobService *service.JobService
	logger     zerolog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *service.JobService, logger zerolog.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger.With().Str("handler", "job").Logger(),
	}
}

// RegisterRoutes registers the job routes. All require authentication.
// The static by_printer segment must be registered alongside the {id}
// pattern; chi gives static segments priority.
func (h *JobHandler) RegisterRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", h.handleUpload)
		r.Get("/", h.handleListAll)
		r.Get("/by_printer/{printerID}", h.handleListForPrinter)
		r.Get("/{id}", h.handleGet)
	})
}

type jobUploadResponse struct {
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}

// handleUpload stores a job log reported by a print agent.
func (h *JobHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	var job domain.PrintJob
	if err := decodeJSON(r, &job); err != nil {
		writeError(w, err)
		return
	}

	jobID, err := h.jobService.Upload(r.Context(), mustOwner(r), &job)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, jobUploadResponse{
		Message: "Job uploaded successfully",
		JobID:   jobID,
	})
}

// handleListForPrinter returns one printer's jobs, newest first.
func (h *JobHandler) handleListForPrinter(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListForPrinter(r.Context(), mustOwner(r), chi.URLParam(r, "printerID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// handleGet returns a single job by id.
func (h *JobHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Get(r.Context(), mustOwner(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleListAll returns every job of the caller, newest first.
func (h *JobHandler) handleListAll(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListAll(r.Context(), mustOwner(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

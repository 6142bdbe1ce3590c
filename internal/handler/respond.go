// Package handler provides HTTP handlers for the printer portal API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/service"
)

// errorBody is the error envelope every failure response uses.
type errorBody struct {
	Detail string `json:"detail"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

// writeError maps a service/domain error onto the HTTP error taxonomy:
// validation 400, bad credentials 401, absence (or foreign ownership) 404,
// conflicts 409, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorBody{Detail: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrInvalidInkAmount),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, domain.ErrInvalidInkColor):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrPrinterNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSettingsNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrDuplicateSerialNumber),
		errors.Is(err, domain.ErrDuplicateInkName):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, rejecting syntactically
// invalid payloads.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewDomainError(domain.ErrValidation, "invalid request body")
	}
	return nil
}

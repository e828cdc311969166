package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/casedesk/casedesk-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps domain errors to HTTP statuses. Anything unmapped is
// logged and reported as a 500 without leaking internals.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var extErr *domain.ExternalServiceError

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmptySelection):
		writeError(w, http.StatusBadRequest, "no records selected")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrCaseClosed):
		writeError(w, http.StatusConflict, "case is closed")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &extErr):
		log.ErrorContext(r.Context(), "external service failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "submission endpoint unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

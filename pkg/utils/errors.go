package utils

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"go.uber.org/zap"
)

// StatusFor maps an error category to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithDomainError writes the client-facing message of a classified error.
// Anything unclassified is logged and answered with fallback.
func RespondWithDomainError(w http.ResponseWriter, err error, fallback string) {
	code := StatusFor(err)
	msg, ok := domain.Message(err)
	if !ok || code == http.StatusInternalServerError {
		zap.L().Error(fallback, zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, fallback)
		return
	}
	RespondWithError(w, code, msg)
}

package handler

import (
	"errors"
	"net/http"

	"seedcodes/internal/domain"
	"seedcodes/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Storage and
// configuration failures surface as 500s carrying the underlying message.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}

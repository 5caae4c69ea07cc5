package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// RespondError maps domain errors to HTTP responses. Anything that is not
// a recognised sentinel becomes a generic 500 so storage detail never
// reaches the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, "Supplier not found")
	case errors.Is(err, ErrValidation):
		Fail(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "Unauthorized")
	default:
		Fail(w, http.StatusInternalServerError, "Internal server error")
	}
}

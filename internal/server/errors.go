// Package server provides the HTTP REST API for the resume assistant.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-assistant/internal/db"
	"github.com/jonathan/resume-assistant/internal/llm"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrSessionNotFound indicates an unknown interview session.
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("interview session not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Validation and not-found errors surface verbatim; anything else is an
// opaque internal failure.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var sessionErr *ErrSessionNotFound
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &sessionErr),
		errors.Is(err, db.ErrRecordNotFound),
		errors.Is(err, db.ErrVersionNotFound),
		errors.Is(err, db.ErrSlugNotFound):
		return http.StatusNotFound
	case errors.Is(err, llm.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

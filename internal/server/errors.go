// Package server provides the HTTP REST API for the talent matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hire3x/talent-match/internal/matching"
)

// ErrInvalidAPIKey indicates a token request with a wrong or unknown API key
type ErrInvalidAPIKey struct{}

func (e *ErrInvalidAPIKey) Error() string {
	return "invalid client ID or API key"
}

// ErrCandidateNotFound indicates the requested candidate does not exist
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var retrievalErr *matching.RetrievalError
	if errors.As(err, &retrievalErr) {
		return http.StatusBadGateway
	}

	switch err.(type) {
	case *ErrInvalidAPIKey:
		return http.StatusUnauthorized
	case *ErrCandidateNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

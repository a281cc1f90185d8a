// Package server provides the HTTP REST API for ResumeForge.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProfileNotFound indicates the user has no career profile yet
type ErrProfileNotFound struct {
	UserID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.UserID)
}

// ErrItemNotFound indicates a career item was not found for this user
type ErrItemNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUpstream indicates a failure in an external collaborator (the Gemini
// provider or a job posting fetch).
type ErrUpstream struct {
	Service string
	Cause   error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s error: %v", e.Service, e.Cause)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrProfileNotFound, *ErrItemNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

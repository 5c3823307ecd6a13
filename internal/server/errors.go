// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
)

// ErrInvalidAdminKey indicates the presented admin key did not match
type ErrInvalidAdminKey struct{}

func (e *ErrInvalidAdminKey) Error() string {
	return "invalid admin key"
}

// ErrAnalysisNotFound indicates the requested analysis does not exist
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrDepartmentNotFound indicates the named department has no criteria
type ErrDepartmentNotFound struct {
	Name string
}

func (e *ErrDepartmentNotFound) Error() string {
	return fmt.Sprintf("unknown department: %s", e.Name)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNoDatabase indicates the server is running without persistence
type ErrNoDatabase struct{}

func (e *ErrNoDatabase) Error() string {
	return "no database configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, db.ErrAnalysisNotFound) {
		return http.StatusNotFound
	}
	switch err.(type) {
	case *ErrInvalidAdminKey:
		return http.StatusUnauthorized
	case *ErrAnalysisNotFound, *ErrDepartmentNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNoDatabase:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

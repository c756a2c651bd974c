package model

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("already exists")
	// ErrNameUnavailable is returned when no free object name could be allocated.
	ErrNameUnavailable = errors.New("no free object name available")
	// ErrStorageUnavailable wraps connection faults of the object store.
	ErrStorageUnavailable = errors.New("object storage unavailable")
	// ErrInvalidToken is returned when a token fails verification for any reason.
	ErrInvalidToken = errors.New("invalid token")
)

// APIError is a failure that maps onto an HTTP response.
type APIError struct {
	Status  int
	Message string
	// Fields and Path hold validation messages for request body fields and
	// for path or query parameters. Set for 422 responses only.
	Fields map[string]string
	Path   []string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewErrNotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

func NewErrNotAuthenticated() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Not authenticated"}
}

func NewErrPermissionDenied(msg string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: msg}
}

func NewErrBadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

// NewErrValidation reports body fields and path or query parameters that failed validation.
func NewErrValidation(fields map[string]string, path []string) *APIError {
	if fields == nil {
		fields = map[string]string{}
	}
	if path == nil {
		path = []string{}
	}
	return &APIError{Status: http.StatusUnprocessableEntity, Message: "validation error", Fields: fields, Path: path}
}

// NewErrRecordNotFound is the generic not found failure of repository reads.
func NewErrRecordNotFound() *APIError {
	return NewErrNotFound("Could not find this record")
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound covers missing products, categories, posts and unknown
	// confirmation tokens.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied terminates an edit request before any form
	// processing happens.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrValidation marks malformed form input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// StatusFor maps service errors onto HTTP statuses for handlers that do
// not carry an *Error already.
func StatusFor(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, "validation_failed"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

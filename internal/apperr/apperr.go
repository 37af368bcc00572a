// Package apperr defines the error taxonomy shared by repositories, the report
// invoker and the HTTP layer. Every error carries the HTTP status the boundary
// should answer with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error with an attached HTTP status.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports a missing or malformed input field (400).
func Validation(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an entity that could not be resolved (404).
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a duplicate unique field (409).
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

// Auth reports bad credentials (401).
func Auth(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure (500). The wrapped error is logged at
// the boundary but never echoed to the client.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Error interno del servidor", Err: err}
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a 404-class error.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

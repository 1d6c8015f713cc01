// Package apperrors defines the error taxonomy surfaced by the service
// layer and its mapping to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an error for response formatting and logging.
type Kind string

const (
	// KindValidation indicates a missing or malformed submission field (HTTP 400).
	KindValidation Kind = "validation"
	// KindClassification indicates the sentiment classifier rejected the input (HTTP 400).
	KindClassification Kind = "classification"
	// KindNotFound indicates a referenced entity does not exist (HTTP 404).
	KindNotFound Kind = "not_found"
	// KindPersistence indicates the underlying store failed or rejected a write (HTTP 500).
	KindPersistence Kind = "persistence"
)

// Error carries a kind, a human-readable message, and an optional cause.
// The duplicate-key field, when the store reports one, rides in Field.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is / errors.As against the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error kind to the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindClassification:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Classification creates a classification error.
func Classification(message string) *Error {
	return &Error{Kind: KindClassification, Message: message}
}

// NotFound creates a not-found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Persistence wraps a store failure.
func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Cause: cause}
}

// WithField records the conflicting field for duplicate-key violations.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// KindOf returns the kind of err when it is (or wraps) an *Error,
// and an empty Kind otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

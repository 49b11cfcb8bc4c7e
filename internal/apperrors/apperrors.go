// Package apperrors classifies failures raised by validators, services and
// repositories so the HTTP layer can map them to status codes.
package apperrors

import (
	"fmt"
	"net/http"

	"github.com/juju/errors"
)

const (
	// InvalidInput marks a missing or malformed field.
	InvalidInput = errors.NotValid

	// NotFound marks a missing target or referenced entity.
	NotFound = errors.NotFound

	// Conflict marks a uniqueness violation.
	Conflict = errors.AlreadyExists

	// Internal marks an unexpected failure, usually from the database.
	Internal = errors.ConstError("internal error")
)

// genericMessage is what callers see for unclassified failures.
const genericMessage = "internal server error"

// Error is a classified failure carrying a message safe to show to API callers.
type Error struct {
	kind    errors.ConstError
	message string
	cause   error
}

// Error returns the message, followed by the cause when there is one.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	kind, ok := target.(errors.ConstError)
	return ok && kind == e.kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the classification of the error.
func (e *Error) Kind() errors.ConstError {
	return e.kind
}

// NewInvalidInput returns an InvalidInput error.
func NewInvalidInput(format string, args ...interface{}) error {
	return &Error{kind: InvalidInput, message: fmt.Sprintf(format, args...)}
}

// NewNotFound returns a NotFound error.
func NewNotFound(format string, args ...interface{}) error {
	return &Error{kind: NotFound, message: fmt.Sprintf(format, args...)}
}

// NewConflict returns a Conflict error.
func NewConflict(format string, args ...interface{}) error {
	return &Error{kind: Conflict, message: fmt.Sprintf(format, args...)}
}

// NewInternal wraps cause as an Internal error. The message is for logs only.
func NewInternal(cause error, format string, args ...interface{}) error {
	return &Error{kind: Internal, message: fmt.Sprintf(format, args...), cause: cause}
}

// StatusCode maps err to the HTTP status of its kind.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, InvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, NotFound):
		return http.StatusNotFound
	case errors.Is(err, Conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message callers may see. Internal and
// unclassified errors collapse into a generic message.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.kind != Internal {
		return appErr.message
	}
	return genericMessage
}

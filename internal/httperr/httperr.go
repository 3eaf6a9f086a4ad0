// Package httperr defines the error taxonomy for the HTTP surface and renders
// every failure as the uniform {error, message, details?} envelope.
package httperr

import (
	"fmt"
	"net/http"

	"github.com/inventario-app/inventario/internal/validation"
)

const (
	CategoryValidation   = "validation_error"
	CategoryUnauthorized = "unauthorized"
	CategoryForbidden    = "forbidden"
	CategoryNotFound     = "not_found"
	CategoryConflict     = "conflict"
	CategoryInternal     = "internal_error"
)

type Error struct {
	Status   int                     `json:"-"`
	Category string                  `json:"error"`
	Message  string                  `json:"message"`
	Details  []validation.FieldError `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Validation carries the full field-error list, never a partial one.
func Validation(details []validation.FieldError) *Error {
	return &Error{
		Status:   http.StatusBadRequest,
		Category: CategoryValidation,
		Message:  "the supplied data does not match the required format",
		Details:  details,
	}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Category: CategoryValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Category: CategoryUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Category: CategoryForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Category: CategoryNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Category: CategoryConflict, Message: message}
}

// Internal hides the underlying cause from the caller; the full error is
// logged server-side where it occurred.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Category: CategoryInternal, Message: message}
}

package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/logging"
)

// Handler is the echo HTTPErrorHandler. *Error values render as-is;
// echo's own errors (404 route miss, 405, oversized body) are folded into the
// envelope; anything else becomes a generic internal error with no internal
// detail crossing the boundary.
func Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			appErr = fromEcho(echoErr)
		} else {
			logging.FromContext(c.Request().Context()).Error("unhandled error", "error", err)
			appErr = Internal("an unexpected error occurred")
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(appErr.Status)
		return
	}
	_ = c.JSON(appErr.Status, appErr)
}

func fromEcho(he *echo.HTTPError) *Error {
	msg, ok := he.Message.(string)
	if !ok {
		msg = http.StatusText(he.Code)
	}

	switch he.Code {
	case http.StatusNotFound:
		return NotFound(msg)
	case http.StatusUnauthorized:
		return Unauthorized(msg)
	case http.StatusForbidden:
		return Forbidden(msg)
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType:
		return &Error{Status: he.Code, Category: CategoryValidation, Message: msg}
	default:
		return &Error{Status: he.Code, Category: CategoryInternal, Message: msg}
	}
}

package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/httperr"
)

func createCookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expireCookie(name, path string) *http.Cookie {
	return createCookie(name, "", path, time.Now().Add(-1*time.Hour))
}

// bindJSON decodes the body into a raw field map so sanitization and schema
// validation can see exactly what the client sent. An empty body yields an
// empty map.
func bindJSON(c echo.Context) (map[string]any, error) {
	raw := map[string]any{}
	if err := c.Bind(&raw); err != nil {
		return nil, httperr.BadRequest("invalid request body")
	}
	return raw, nil
}

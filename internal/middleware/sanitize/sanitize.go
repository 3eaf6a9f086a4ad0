// Package sanitize cleans string-valued path and query parameters before any
// handler sees them. Request bodies are sanitized after decoding, right
// before schema validation.
package sanitize

import (
	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/validation"
)

func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			names := c.ParamNames()
			values := c.ParamValues()
			cleaned := make([]string, len(values))
			for i, v := range values {
				cleaned[i] = validation.SanitizeString(v)
			}
			c.SetParamNames(names...)
			c.SetParamValues(cleaned...)

			q := c.Request().URL.Query()
			changed := false
			for key, vals := range q {
				for i, v := range vals {
					s := validation.SanitizeString(v)
					if s != v {
						vals[i] = s
						changed = true
					}
				}
				q[key] = vals
			}
			if changed {
				c.Request().URL.RawQuery = q.Encode()
			}

			return next(c)
		}
	}
}

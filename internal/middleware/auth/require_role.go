package auth

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/authz"
	"github.com/inventario-app/inventario/internal/httperr"
)

// RequireRole demands an exact role match. There is no hierarchy here; the
// capability table in RequirePermission is where broader grants live.
func (m *Middleware) RequireRole(role authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := m.resolve(c)
			if err != nil {
				return err
			}
			if sess == nil {
				return httperr.Unauthorized("you must be logged in to access this resource")
			}

			if sess.User.Role != role {
				return httperr.Forbidden(fmt.Sprintf(
					"role '%s' is required to access this resource, your role is '%s'",
					role, sess.User.Role,
				))
			}

			setUserContext(c, sess.User)
			return next(c)
		}
	}
}

// RequireAdmin gates the mutating product routes.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole(authz.RoleAdmin)(next)
}

package auth

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/authz"
	"github.com/inventario-app/inventario/internal/httperr"
)

// RequirePermission consults the role capability table for the given action.
func (m *Middleware) RequirePermission(action authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := m.resolve(c)
			if err != nil {
				return err
			}
			if sess == nil {
				return httperr.Unauthorized("you must be logged in to access this resource")
			}

			if !authz.Can(sess.User.Role, action) {
				return httperr.Forbidden(fmt.Sprintf(
					"your role '%s' does not allow the action '%s'",
					sess.User.Role, action,
				))
			}

			setUserContext(c, sess.User)
			return next(c)
		}
	}
}

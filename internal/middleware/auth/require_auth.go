package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/httperr"
)

func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.resolve(c)
		if err != nil {
			return err
		}
		if sess == nil {
			return httperr.Unauthorized("you must be logged in to access this resource")
		}

		setUserContext(c, sess.User)
		return next(c)
	}
}

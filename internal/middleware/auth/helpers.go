package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/httperr"
	"github.com/inventario-app/inventario/internal/session"
)

const userContextKey = "user"

// Middleware resolves the session cookie against the store. Authentication is
// a pure function of (token, store); nothing else is consulted.
type Middleware struct {
	Sessions session.Store
}

func NewMiddleware(sessions session.Store) *Middleware {
	return &Middleware{Sessions: sessions}
}

// resolve looks the request's cookie up in the store. A missing cookie or an
// unknown token both mean "unauthenticated"; only a failing store lookup is
// an error.
func (m *Middleware) resolve(c echo.Context) (*session.Session, error) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	sess, err := m.Sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return nil, httperr.Internal("could not verify the session")
	}
	return sess, nil
}

func setUserContext(c echo.Context, u session.User) {
	c.Set(userContextKey, u)
}

// CurrentUser returns the identity attached by one of the Require*
// middlewares.
func CurrentUser(c echo.Context) (session.User, bool) {
	u, ok := c.Get(userContextKey).(session.User)
	return u, ok
}

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inventario-app/inventario/internal/httperr"
	"github.com/inventario-app/inventario/internal/logging"
	authmw "github.com/inventario-app/inventario/internal/middleware/auth"
	"github.com/inventario-app/inventario/internal/service"
	"github.com/inventario-app/inventario/internal/session"
	"github.com/inventario-app/inventario/internal/validation"
)

type AuthHandler struct {
	Svc        *service.AuthService
	Sessions   session.Store
	SessionTTL time.Duration
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	raw, err := bindJSON(c)
	if err != nil {
		return err
	}

	fields, ferrs := validation.LoginSchema.Validate(validation.SanitizeMap(raw))
	if ferrs != nil {
		return httperr.Validation(ferrs)
	}

	username := fields["username"].(string)
	password := fields["password"].(string)

	token, user, err := h.Svc.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "username", username)
			return httperr.Unauthorized("the username or password is incorrect")
		}
		l.Error("login_failed", "status", 500, "username", username, "error", err)
		return httperr.Internal("could not log in")
	}

	ttl := h.SessionTTL
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	c.SetCookie(createCookie(session.CookieName, token, "/", time.Now().Add(ttl)))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "OK",
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	user, _ := authmw.CurrentUser(c)

	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.Svc.Logout(ctx, cookie.Value); err != nil {
			l.Error("logout_failed", "status", 500, "username", user.Username, "error", err)
			return httperr.Internal("could not close the session")
		}
	}

	c.SetCookie(expireCookie(session.CookieName, "/"))
	l.Info("logout_success", "username", user.Username)

	return c.JSON(http.StatusOK, echo.Map{"message": "session closed"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		return httperr.Unauthorized("you must be logged in to access this resource")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Status never rejects: without a session it reports unauthenticated instead
// of failing with a 401.
func (h *AuthHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false, "user": nil})
	}

	sess, err := h.Sessions.Get(ctx, cookie.Value)
	if err != nil {
		logging.FromContext(ctx).Error("status_check_failed", "error", err)
		return httperr.Internal("could not verify the session")
	}
	if sess == nil {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false, "user": nil})
	}

	return c.JSON(http.StatusOK, echo.Map{"authenticated": true, "user": sess.User})
}

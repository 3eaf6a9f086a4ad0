package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/authz"
	"github.com/inventario-app/inventario/internal/hash"
	"github.com/inventario-app/inventario/internal/logging"
	"github.com/inventario-app/inventario/internal/repo"
	"github.com/inventario-app/inventario/internal/session"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Sessions session.Store
}

// Login verifies the credentials and establishes a session. Unknown username
// and wrong password collapse into the same ErrInvalidCredentials so callers
// cannot enumerate accounts. A session-store failure is a distinct error, not
// a credentials one.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, session.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", session.User{}, ErrInvalidCredentials
		}
		return "", session.User{}, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", session.User{}, ErrInvalidCredentials
	}

	role, ok := authz.ParseRole(user.Role)
	if !ok {
		return "", session.User{}, fmt.Errorf("user %s has unknown role %q", user.Username, user.Role)
	}

	sessUser := session.User{ID: user.ID, Username: user.Username, Role: role}
	token, err := s.Sessions.Create(ctx, session.Session{User: sessUser})
	if err != nil {
		return "", session.User{}, fmt.Errorf("create session: %w", err)
	}

	l.Info("login_success", "username", user.Username, "role", user.Role)
	return token, sessUser, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}

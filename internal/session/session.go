// Package session resolves cookie-borne tokens to authenticated identities.
// The store is the only stateful collaborator of the authorization layer;
// handlers receive sessions as plain values.
package session

import (
	"context"
	"time"

	"github.com/inventario-app/inventario/internal/authz"
)

// CookieName is the session cookie the browser carries.
const CookieName = "inventario_sid"

type User struct {
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	Role     authz.Role `json:"role"`
}

type Session struct {
	User User `json:"user"`
}

// Store is the opaque token -> session lookup. Get returns (nil, nil) when
// the token resolves to nothing; that is "unauthenticated", not a failure.
type Store interface {
	Create(ctx context.Context, sess Session) (token string, err error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

var _ Store = (*RedisStore)(nil)
var _ Store = (*MemoryStore)(nil)

// DefaultTTL bounds a session's lifetime when the config supplies none.
const DefaultTTL = 24 * time.Hour

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, Session{User: User{ID: 1, Username: "admin", Role: "admin"}})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "admin", sess.User.Username)

	require.NoError(t, store.Delete(ctx, token))

	sess, err = store.Get(ctx, token)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	sess, err := store.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	token, err := store.Create(ctx, Session{User: User{ID: 2, Username: "viewer", Role: "viewer"}})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := store.Create(ctx, Session{User: User{ID: 1, Username: "admin", Role: "admin"}})
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}

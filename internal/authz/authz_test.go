package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCan(t *testing.T) {
	actions := []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}

	for _, a := range actions {
		require.True(t, Can(RoleAdmin, a), "admin should be allowed %s", a)
	}

	require.True(t, Can(RoleViewer, ActionRead))
	for _, a := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		require.False(t, Can(RoleViewer, a), "viewer should be denied %s", a)
	}

	for _, a := range actions {
		require.False(t, Can(Role("ghost"), a), "unknown role should be denied %s", a)
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("admin")
	require.True(t, ok)
	require.Equal(t, RoleAdmin, r)

	r, ok = ParseRole("viewer")
	require.True(t, ok)
	require.Equal(t, RoleViewer, r)

	for _, s := range []string{"", "Admin", "root", "superuser"} {
		_, ok := ParseRole(s)
		require.False(t, ok, "%q should not parse", s)
	}
}

package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuard_StartsResolving(t *testing.T) {
	g := NewGuard()
	require.Equal(t, StateResolving, g.State())
}

func TestGuard_ResolveSucceeded(t *testing.T) {
	g := NewGuard()
	require.NoError(t, g.ResolveSucceeded())
	require.Equal(t, StateAuthenticated, g.State())
}

func TestGuard_ResolveFailedThenLogin(t *testing.T) {
	g := NewGuard()
	require.NoError(t, g.ResolveFailed())
	require.Equal(t, StateUnauthenticated, g.State())

	require.NoError(t, g.LoggedIn())
	require.Equal(t, StateAuthenticated, g.State())
}

func TestGuard_LoggedInWhileResolvingRejected(t *testing.T) {
	g := NewGuard()
	require.ErrorIs(t, g.LoggedIn(), ErrInvalidTransition)
	require.Equal(t, StateResolving, g.State())
}

func TestGuard_LoggedOutWhileResolvingRejected(t *testing.T) {
	g := NewGuard()
	require.ErrorIs(t, g.LoggedOut(), ErrInvalidTransition)
}

func TestGuard_ResolveTwiceRejected(t *testing.T) {
	g := NewGuard()
	require.NoError(t, g.ResolveFailed())
	require.ErrorIs(t, g.ResolveFailed(), ErrInvalidTransition)
	require.ErrorIs(t, g.ResolveSucceeded(), ErrInvalidTransition)
}

func TestGuard_LogoutIdempotent(t *testing.T) {
	g := NewGuard()
	require.NoError(t, g.ResolveSucceeded())
	require.NoError(t, g.LoggedOut())
	require.NoError(t, g.LoggedOut())
	require.Equal(t, StateUnauthenticated, g.State())
}

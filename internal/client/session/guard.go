// Package session owns the client's authentication lifecycle: resolving the
// saved token on startup, logging in and out, and tracking which of the
// three auth states the client is in.
package session

import (
	"errors"
	"fmt"
	"sync"
)

// State is the client's authentication state.
type State string

const (
	// StateResolving means the saved token is still being verified; the UI
	// must not treat the user as either logged in or logged out yet.
	StateResolving       State = "resolving"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

var ErrInvalidTransition = errors.New("invalid session state transition")

// Guard is a small state machine over the three auth states. State changes
// happen only through the named transition methods; there is no setter.
// A fresh Guard starts in StateResolving.
type Guard struct {
	mu    sync.RWMutex
	state State
}

func NewGuard() *Guard {
	return &Guard{state: StateResolving}
}

func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Guard) transition(from, to State) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != from {
		return fmt.Errorf("%w: %s -> %s while %s", ErrInvalidTransition, from, to, g.state)
	}
	g.state = to
	return nil
}

// ResolveSucceeded moves resolving -> authenticated.
func (g *Guard) ResolveSucceeded() error {
	return g.transition(StateResolving, StateAuthenticated)
}

// ResolveFailed moves resolving -> unauthenticated.
func (g *Guard) ResolveFailed() error {
	return g.transition(StateResolving, StateUnauthenticated)
}

// LoggedIn moves unauthenticated -> authenticated.
func (g *Guard) LoggedIn() error {
	return g.transition(StateUnauthenticated, StateAuthenticated)
}

// LoggedOut moves authenticated -> unauthenticated. Calling it while
// already unauthenticated is a no-op, so logout stays idempotent.
func (g *Guard) LoggedOut() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case StateAuthenticated, StateUnauthenticated:
		g.state = StateUnauthenticated
		return nil
	default:
		return fmt.Errorf("%w: logout while %s", ErrInvalidTransition, g.state)
	}
}

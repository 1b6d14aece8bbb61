package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dashapp/internal/client/client"
	"github.com/dmitrijs2005/dashapp/internal/client/models"
	"github.com/dmitrijs2005/dashapp/internal/client/store"
)

// authInvalidRegistrar is implemented by API clients that can report a
// rejected bearer token.
type authInvalidRegistrar interface {
	SetAuthInvalidHandler(func())
}

// Manager drives the auth lifecycle. The access token lives in memory for
// request signing and in the store for restarts; the two are updated
// together so a crash cannot leave a token that was never verified.
type Manager struct {
	store store.Store
	api   client.Service
	guard *Guard

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewManager(st store.Store) *Manager {
	return &Manager{
		store: st,
		guard: NewGuard(),
	}
}

// SetService wires the API client. Done after construction because the
// client's token source is this manager. If the client supports it, the
// manager registers itself for auth-invalid notifications.
func (m *Manager) SetService(api client.Service) {
	m.api = api
	if r, ok := api.(authInvalidRegistrar); ok {
		r.SetAuthInvalidHandler(m.handleAuthInvalid)
	}
}

// Token returns the in-memory access token, "" when logged out. It is the
// token source for the API client.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the profile loaded at login or resolution, nil when logged
// out.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// State reports the guard's current auth state.
func (m *Manager) State() State {
	return m.guard.State()
}

func (m *Manager) setAuthenticated(token string, user *models.User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
}

func (m *Manager) clearAuth(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	_ = m.store.Delete(ctx, store.KeyAccessToken)
}

// handleAuthInvalid runs when the server rejects the bearer token mid
// session: the token is gone server-side, so discard it locally and drop to
// unauthenticated.
func (m *Manager) handleAuthInvalid() {
	m.clearAuth(context.Background())
	_ = m.guard.LoggedOut()
}

// Resolve verifies the saved token once at startup. No saved token, or a
// token the server no longer accepts, resolves to unauthenticated; a failed
// verification also deletes the saved token so the next start resolves
// instantly.
func (m *Manager) Resolve(ctx context.Context) error {
	token, err := m.store.Get(ctx, store.KeyAccessToken)
	if err != nil || token == "" {
		_ = m.guard.ResolveFailed()
		return err
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	user, err := m.api.GetMe(ctx)
	if err != nil {
		m.clearAuth(ctx)
		// the 401 hook may already have moved the guard
		if m.guard.State() == StateResolving {
			_ = m.guard.ResolveFailed()
		}
		return nil
	}

	m.setAuthenticated(token, user)
	if m.guard.State() == StateResolving {
		return m.guard.ResolveSucceeded()
	}
	return nil
}

// Login exchanges the credentials for a token, persists it, and loads the
// profile. If the profile fetch fails the token is discarded again: either
// the whole login succeeds or nothing is kept.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.api.LoginAccessToken(ctx, email, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	if err := m.store.Set(ctx, store.KeyAccessToken, token); err != nil {
		m.clearAuth(ctx)
		return err
	}

	user, err := m.api.GetMe(ctx)
	if err != nil {
		m.clearAuth(ctx)
		return err
	}

	m.setAuthenticated(token, user)
	return m.guard.LoggedIn()
}

// Signup creates the account and logs straight in with the same
// credentials.
func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	if _, err := m.api.Signup(ctx, name, email, password); err != nil {
		return err
	}
	return m.Login(ctx, email, password)
}

// Logout discards the local session. It never calls the server and repeated
// calls are no-ops.
func (m *Manager) Logout(ctx context.Context) {
	m.clearAuth(ctx)
	_ = m.guard.LoggedOut()
}

// Refresh re-fetches the profile, keeping the cached user current after
// profile or avatar updates.
func (m *Manager) Refresh(ctx context.Context) error {
	user, err := m.api.GetMe(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return nil
}

// Package session owns the authenticated session lifecycle: restore at
// startup, login, logout, silent refresh, and profile updates. It is the
// single source of truth for "who is logged in"; everything else reads the
// identity from here and never touches the store directly.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// State is the session lifecycle state.
type State string

const (
	// Unauthenticated means no identity is established.
	Unauthenticated State = "unauthenticated"
	// Authenticating means a login call is in flight. It always resolves to
	// one of the other two states.
	Authenticating State = "authenticating"
	// Authenticated means an identity and access token are established.
	Authenticated State = "authenticated"
)

// ErrLoginInFlight is returned when Login is called while a previous login
// has not yet settled.
var ErrLoginInFlight = errors.New("login already in progress")

// Manager establishes, maintains, and tears down the authenticated session.
// It is the sole writer of its Store.
type Manager struct {
	client *sdk.Client
	store  Store
	log    *zap.Logger

	mu    sync.RWMutex
	state State
	creds *sdk.Credentials
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger attaches a structured logger for session diagnostics.
func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a session manager bound to an API client and a store.
// The session starts unauthenticated; call Restore to pick up a persisted
// snapshot.
func NewManager(client *sdk.Client, store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		log:    zap.NewNop(),
		state:  Unauthenticated,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.Named("session")
	return m
}

// Restore attempts to re-establish a session from the persisted snapshot.
// The restore is optimistic: a well-formed snapshot is trusted without a
// server round-trip, matching how the dashboard trusts its cached profile at
// startup. A missing or malformed snapshot clears any partial state and
// leaves the session unauthenticated. Restore is synchronous so callers can
// decide whether to prompt for login before rendering anything.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	creds, err := m.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			m.log.Warn("failed to load stored session", zap.Error(err))
		}
		m.clearLocked()
		return
	}
	if !creds.Valid() {
		m.log.Warn("stored session snapshot is malformed, discarding")
		m.clearLocked()
		return
	}

	m.creds = creds
	m.state = Authenticated
	m.log.Debug("session restored", zap.String("user", creds.Identity.ID))
}

// Login authenticates against the API and establishes the session. On
// failure any previously established session is left untouched. A second
// Login while one is in flight is rejected so the caller can block duplicate
// submissions.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	if m.state == Authenticating {
		m.mu.Unlock()
		return ErrLoginInFlight
	}
	prev := m.state
	m.state = Authenticating
	m.mu.Unlock()

	creds, err := m.client.Login(ctx, email, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = prev
		return err
	}

	creds.SavedAt = time.Now().UTC()
	if err := m.store.Save(creds); err != nil {
		m.state = prev
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.creds = creds
	m.state = Authenticated
	m.log.Info("logged in",
		zap.String("user", creds.Identity.ID),
		zap.String("role", string(creds.Identity.Role)))
	return nil
}

// Logout tears the session down unconditionally. It never fails: a store
// error is logged and the in-memory session is cleared regardless.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	m.log.Info("logged out")
}

// Refresh silently renews the access token using the ambient refresh
// credential. On success only the token is replaced. A rejected refresh
// forces logout so a stale token never survives; transient transport errors
// are swallowed and logged. Refresh never reports an error to its caller.
func (m *Manager) Refresh(ctx context.Context) {
	m.mu.RLock()
	if m.state != Authenticated {
		m.mu.RUnlock()
		return
	}
	m.mu.RUnlock()

	token, err := m.client.RefreshToken(ctx)
	if err != nil {
		if errors.Is(err, sdk.ErrSessionExpired) {
			m.mu.Lock()
			if m.state == Authenticated {
				m.clearLocked()
				m.log.Info("refresh rejected, session terminated")
			}
			m.mu.Unlock()
			return
		}
		m.log.Warn("token refresh failed, keeping current session", zap.Error(err))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated {
		// Logged out while the refresh was in flight; drop the result.
		return
	}
	updated := *m.creds
	updated.AccessToken = token
	updated.SavedAt = time.Now().UTC()
	if err := m.store.Save(&updated); err != nil {
		m.log.Warn("failed to persist refreshed token", zap.Error(err))
	}
	m.creds = &updated
	m.log.Debug("access token refreshed")
}

// UpdateIdentity merges partial profile fields into the current identity and
// re-persists the snapshot. It is a no-op when unauthenticated.
func (m *Manager) UpdateIdentity(patch sdk.IdentityPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated {
		return
	}
	updated := *m.creds
	updated.Identity = updated.Identity.Merge(patch)
	if err := m.store.Save(&updated); err != nil {
		m.log.Warn("failed to persist profile update", zap.Error(err))
		return
	}
	m.creds = &updated
}

// Identity returns the current identity. The boolean is false when the
// session is unauthenticated.
func (m *Manager) Identity() (sdk.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != Authenticated {
		return sdk.Identity{}, false
	}
	return m.creds.Identity, true
}

// Credentials returns a copy of the current snapshot, or nil when
// unauthenticated.
func (m *Manager) Credentials() *sdk.Credentials {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != Authenticated {
		return nil
	}
	creds := *m.creds
	return &creds
}

// Loading reports whether a login is currently in flight, so callers can
// block duplicate submissions.
func (m *Manager) Loading() bool {
	return m.State() == Authenticating
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// clearLocked wipes token and identity from memory and storage together.
// Callers must hold m.mu.
func (m *Manager) clearLocked() {
	if err := m.store.Delete(); err != nil {
		m.log.Warn("failed to clear stored session", zap.Error(err))
	}
	m.creds = nil
	m.state = Unauthenticated
}

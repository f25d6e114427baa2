package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// memStore is an in-memory session.Store for tests.
type memStore struct {
	creds *sdk.Credentials
	saves int
}

func (s *memStore) Save(creds *sdk.Credentials) error {
	copied := *creds
	s.creds = &copied
	s.saves++
	return nil
}

func (s *memStore) Load() (*sdk.Credentials, error) {
	if s.creds == nil {
		return nil, ErrNoSession
	}
	copied := *s.creds
	return &copied, nil
}

func (s *memStore) Delete() error {
	s.creds = nil
	return nil
}

// fakeAPI is a minimal auth backend: one known user, cookie-based refresh.
type fakeAPI struct {
	refreshValid bool
	refreshFails bool
	refreshToken string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "admin@bolt.dev" || body.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r-1", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken": "tok-1",
			"user": map[string]any{
				"id":    "u-1",
				"name":  "Ada Admin",
				"email": "admin@bolt.dev",
				"role":  "Admin",
			},
		})
	})
	mux.HandleFunc("GET /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if f.refreshFails {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		if _, err := r.Cookie("refresh_token"); err != nil || !f.refreshValid {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		token := f.refreshToken
		if token == "" {
			token = "tok-2"
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
	})
	return mux
}

func newTestManager(t *testing.T, api *fakeAPI) (*Manager, *memStore) {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	store := &memStore{}
	client := sdk.NewClient(srv.URL)
	return NewManager(client, store), store
}

func TestManagerLogin(t *testing.T) {
	t.Run("success establishes and persists the session", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeAPI{refreshValid: true})

		require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))
		assert.Equal(t, Authenticated, mgr.State())

		who, ok := mgr.Identity()
		require.True(t, ok)
		assert.Equal(t, "u-1", who.ID)
		assert.Equal(t, sdk.RoleAdmin, who.Role)
		// Optional fields are normalized, never left empty.
		assert.Equal(t, "System", who.Organization)

		// Persisted snapshot round-trips to the in-memory identity.
		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, who, persisted.Identity)
		assert.Equal(t, "tok-1", persisted.AccessToken)
	})

	t.Run("bad credentials leave prior session untouched", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeAPI{refreshValid: true})
		require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))

		err := mgr.Login(context.Background(), "admin@bolt.dev", "wrong")
		assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)

		assert.Equal(t, Authenticated, mgr.State())
		persisted, loadErr := store.Load()
		require.NoError(t, loadErr)
		assert.Equal(t, "tok-1", persisted.AccessToken)
	})

	t.Run("missing fields are rejected before any request", func(t *testing.T) {
		mgr, _ := newTestManager(t, &fakeAPI{})
		err := mgr.Login(context.Background(), "", "hunter2")
		assert.ErrorIs(t, err, sdk.ErrInvalidInput)
		assert.Equal(t, Unauthenticated, mgr.State())
	})
}

func TestManagerLogout(t *testing.T) {
	mgr, store := newTestManager(t, &fakeAPI{refreshValid: true})
	require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))

	mgr.Logout()

	assert.Equal(t, Unauthenticated, mgr.State())
	_, ok := mgr.Identity()
	assert.False(t, ok)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerRestore(t *testing.T) {
	t.Run("well-formed snapshot restores optimistically", func(t *testing.T) {
		store := &memStore{creds: &sdk.Credentials{
			AccessToken: "tok-9",
			TokenType:   "Bearer",
			Identity:    sdk.Identity{ID: "u-9", Name: "Res Tored", Email: "r@bolt.dev", Role: sdk.RoleManager},
		}}
		mgr := NewManager(sdk.NewClient("http://localhost:0"), store)

		mgr.Restore()

		assert.Equal(t, Authenticated, mgr.State())
		who, ok := mgr.Identity()
		require.True(t, ok)
		assert.Equal(t, "u-9", who.ID)
	})

	t.Run("malformed snapshot is discarded", func(t *testing.T) {
		// Token without identity: the two must only ever exist together.
		store := &memStore{creds: &sdk.Credentials{AccessToken: "tok-9"}}
		mgr := NewManager(sdk.NewClient("http://localhost:0"), store)

		mgr.Restore()

		assert.Equal(t, Unauthenticated, mgr.State())
		_, err := store.Load()
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("no snapshot stays unauthenticated", func(t *testing.T) {
		mgr := NewManager(sdk.NewClient("http://localhost:0"), &memStore{})
		mgr.Restore()
		assert.Equal(t, Unauthenticated, mgr.State())
	})
}

func TestManagerRefresh(t *testing.T) {
	t.Run("success replaces only the access token", func(t *testing.T) {
		api := &fakeAPI{refreshValid: true}
		mgr, store := newTestManager(t, api)
		require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))
		before, _ := mgr.Identity()

		mgr.Refresh(context.Background())

		assert.Equal(t, Authenticated, mgr.State())
		after, _ := mgr.Identity()
		assert.Equal(t, before, after)
		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok-2", persisted.AccessToken)
	})

	t.Run("rejected refresh forces logout exactly once", func(t *testing.T) {
		api := &fakeAPI{refreshValid: true}
		mgr, store := newTestManager(t, api)
		require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))

		api.refreshValid = false
		mgr.Refresh(context.Background())

		assert.Equal(t, Unauthenticated, mgr.State())
		_, err := store.Load()
		assert.ErrorIs(t, err, ErrNoSession)

		// A second refresh after logout is a no-op, not another teardown.
		saves := store.saves
		mgr.Refresh(context.Background())
		assert.Equal(t, saves, store.saves)
		assert.Equal(t, Unauthenticated, mgr.State())
	})

	t.Run("transient failure keeps the session", func(t *testing.T) {
		api := &fakeAPI{refreshValid: true}
		mgr, store := newTestManager(t, api)
		require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))

		api.refreshFails = true
		mgr.Refresh(context.Background())

		assert.Equal(t, Authenticated, mgr.State())
		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok-1", persisted.AccessToken)
	})

	t.Run("unauthenticated refresh is a no-op", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeAPI{refreshValid: true})
		mgr.Refresh(context.Background())
		assert.Equal(t, Unauthenticated, mgr.State())
		assert.Zero(t, store.saves)
	})
}

func TestManagerUpdateIdentity(t *testing.T) {
	t.Run("merges and re-persists", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeAPI{refreshValid: true})
		require.NoError(t, mgr.Login(context.Background(), "admin@bolt.dev", "hunter2"))

		name := "Ada L. Admin"
		dept := "Platform"
		mgr.UpdateIdentity(sdk.IdentityPatch{Name: &name, Department: &dept})

		who, _ := mgr.Identity()
		assert.Equal(t, "Ada L. Admin", who.Name)
		assert.Equal(t, "Platform", who.Department)
		assert.Equal(t, "admin@bolt.dev", who.Email)

		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, who, persisted.Identity)
	})

	t.Run("no-op when unauthenticated", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeAPI{})
		name := "Nobody"
		mgr.UpdateIdentity(sdk.IdentityPatch{Name: &name})
		assert.Zero(t, store.saves)
	})
}

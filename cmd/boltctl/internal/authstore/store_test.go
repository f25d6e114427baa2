package authstore

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/session"
)

func TestFileStore(t *testing.T) {
	t.Run("save then load round-trips the snapshot", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		creds := &sdk.Credentials{
			AccessToken: "tok-1",
			TokenType:   "Bearer",
			Identity: sdk.Identity{
				ID:    "u-1",
				Name:  "Sam",
				Email: "sam@bolt.dev",
				Role:  sdk.RoleAdmin,
			},
			SavedAt: time.Now().UTC().Truncate(time.Second),
		}
		require.NoError(t, store.Save(creds))

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, creds, loaded)
	})

	t.Run("missing file reports no session", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		_, err := store.Load()
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("corrupt file is an error, not a silent empty session", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, sessionFile), []byte("{not json"), 0600))

		_, err := NewFileStore(dir).Load()
		require.Error(t, err)
		assert.NotErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("session file is owner-only", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir)
		require.NoError(t, store.Save(&sdk.Credentials{AccessToken: "tok"}))

		info, err := os.Stat(filepath.Join(dir, sessionFile))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("delete tolerates an absent file", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		require.NoError(t, store.Delete())

		require.NoError(t, store.Save(&sdk.Credentials{AccessToken: "tok"}))
		require.NoError(t, store.Delete())
		_, err := store.Load()
		assert.ErrorIs(t, err, session.ErrNoSession)
	})
}

func TestJar(t *testing.T) {
	serverURL := &url.URL{Scheme: "http", Host: "localhost:5000", Path: "/api/auth/login"}
	refresh := []*http.Cookie{{Name: "refresh_token", Value: "r-1", Path: "/"}}

	t.Run("cookies survive a new jar on the same directory", func(t *testing.T) {
		dir := t.TempDir()

		first, err := NewJar(dir)
		require.NoError(t, err)
		first.SetCookies(serverURL, refresh)

		second, err := NewJar(dir)
		require.NoError(t, err)
		got := second.Cookies(&url.URL{Scheme: "http", Host: "localhost:5000", Path: "/api/auth/refresh"})
		require.Len(t, got, 1)
		assert.Equal(t, "refresh_token", got[0].Name)
		assert.Equal(t, "r-1", got[0].Value)
	})

	t.Run("clear removes cookies from memory and disk", func(t *testing.T) {
		dir := t.TempDir()

		jar, err := NewJar(dir)
		require.NoError(t, err)
		jar.SetCookies(serverURL, refresh)
		jar.Clear()
		assert.Empty(t, jar.Cookies(serverURL))

		_, err = os.Stat(filepath.Join(dir, cookieFile))
		assert.True(t, os.IsNotExist(err))

		reopened, err := NewJar(dir)
		require.NoError(t, err)
		assert.Empty(t, reopened.Cookies(serverURL))
	})
}

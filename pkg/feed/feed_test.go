package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

type stubIdentity struct {
	who sdk.Identity
	ok  bool
}

func (s *stubIdentity) Identity() (sdk.Identity, bool) { return s.who, s.ok }

type stubSource struct {
	items []Notification
	err   error
	calls int
}

func (s *stubSource) Fetch(context.Context, sdk.Identity) ([]Notification, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func loggedIn() *stubIdentity {
	return &stubIdentity{who: sdk.Identity{ID: "u-1", Role: sdk.RoleAdmin}, ok: true}
}

func notes(ids ...string) []Notification {
	var out []Notification
	for _, id := range ids {
		out = append(out, Notification{ID: id, UserID: "u-1"})
	}
	return out
}

func TestFeedLoad(t *testing.T) {
	t.Run("requires an authenticated identity", func(t *testing.T) {
		src := &stubSource{items: notes("a")}
		f := New(src, &stubIdentity{})

		f.Load(context.Background())

		assert.Zero(t, src.calls)
		assert.Empty(t, f.Notifications())
	})

	t.Run("replaces the whole collection on every load", func(t *testing.T) {
		src := &stubSource{items: notes("a", "b", "c")}
		f := New(src, loggedIn())

		f.Load(context.Background())
		require.Len(t, f.Notifications(), 3)

		// A second load with a smaller result leaves no residue.
		src.items = notes("d")
		f.Load(context.Background())

		items := f.Notifications()
		require.Len(t, items, 1)
		assert.Equal(t, "d", items[0].ID)
	})

	t.Run("fetch failure keeps the previous collection", func(t *testing.T) {
		src := &stubSource{items: notes("a", "b")}
		f := New(src, loggedIn())
		f.Load(context.Background())

		src.err = errors.New("connection refused")
		f.Load(context.Background())

		assert.Len(t, f.Notifications(), 2)
	})
}

func TestFeedReadState(t *testing.T) {
	t.Run("mark all read drains the unread count", func(t *testing.T) {
		src := &stubSource{items: notes("a", "b", "c")}
		f := New(src, loggedIn())
		f.Load(context.Background())
		require.Equal(t, 3, f.UnreadCount())

		f.MarkAllRead()

		assert.Equal(t, 0, f.UnreadCount())
	})

	t.Run("mark read flags one entry", func(t *testing.T) {
		src := &stubSource{items: notes("a", "b")}
		f := New(src, loggedIn())
		f.Load(context.Background())

		f.MarkRead("a")

		assert.Equal(t, 1, f.UnreadCount())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		src := &stubSource{items: notes("a")}
		f := New(src, loggedIn())
		f.Load(context.Background())

		f.MarkRead("zzz")

		assert.Equal(t, 1, f.UnreadCount())
	})
}

func TestFeedPush(t *testing.T) {
	t.Run("prepends a local notification for the current user", func(t *testing.T) {
		src := &stubSource{items: notes("a")}
		f := New(src, loggedIn())
		f.Load(context.Background())

		f.Push("Export finished", "The user export completed", LevelSuccess)

		items := f.Notifications()
		require.Len(t, items, 2)
		assert.Equal(t, "Export finished", items[0].Title)
		assert.NotEmpty(t, items[0].ID)
		assert.Equal(t, "u-1", items[0].UserID)
		assert.False(t, items[0].Read)
	})

	t.Run("skipped without an identity", func(t *testing.T) {
		f := New(&stubSource{}, &stubIdentity{})
		f.Push("x", "y", LevelInfo)
		assert.Empty(t, f.Notifications())
	})
}

func TestFeedReset(t *testing.T) {
	src := &stubSource{items: notes("a", "b")}
	f := New(src, loggedIn())
	f.Load(context.Background())
	require.NotEmpty(t, f.Notifications())

	f.Reset()

	assert.Empty(t, f.Notifications())
	assert.Empty(t, f.Owner())
	assert.Zero(t, f.UnreadCount())
}

func TestFromAuditEntry(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("level mapping", func(t *testing.T) {
		cases := []struct {
			action string
			want   Level
		}{
			{"CREATE", LevelSuccess},
			{"create", LevelSuccess},
			{"UPDATE", LevelInfo},
			{"DELETE", LevelError},
			{"LOGIN_FAILED", LevelWarning},
			{"", LevelWarning},
		}
		for _, tc := range cases {
			n := FromAuditEntry(sdk.AuditEntry{ID: "1", Action: tc.action, CreatedAt: now})
			assert.Equal(t, tc.want, n.Level, "action %q", tc.action)
			assert.False(t, n.Read, "read always starts false")
		}
	})

	t.Run("delete maps to error and carries the entry fields", func(t *testing.T) {
		n := FromAuditEntry(sdk.AuditEntry{
			ID:             "evt-7",
			Action:         "DELETE",
			Entity:         "User",
			Details:        "Removed account bob@corp.io",
			UserID:         "u-1",
			OrganizationID: "org-3",
			CreatedAt:      now,
		})
		assert.Equal(t, LevelError, n.Level)
		assert.Equal(t, "User deleted", n.Title)
		assert.Equal(t, "Removed account bob@corp.io", n.Message)
		assert.Equal(t, "org-3", n.OrganizationID)
		assert.False(t, n.Read)
	})
}

func TestStaticSource(t *testing.T) {
	seed := []Notification{
		{ID: "1", UserID: "u-1"},
		{ID: "2", UserID: "u-2"},
		{ID: "3", UserID: "u-1"},
	}
	src := NewStaticSource(seed)

	items, err := src.Fetch(context.Background(), sdk.Identity{ID: "u-1"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, n := range items {
		assert.Equal(t, "u-1", n.UserID)
	}
}

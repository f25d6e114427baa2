// Package feed materializes a per-identity notification list from an
// external source and tracks local read state. The collection lives only in
// memory; it is rebuilt from the source on every load and discarded when the
// identity changes.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// IdentitySource supplies the current authenticated identity. The session
// manager satisfies this.
type IdentitySource interface {
	Identity() (sdk.Identity, bool)
}

// Feed is the notification collection for the current identity.
type Feed struct {
	source Source
	ids    IdentitySource
	log    *zap.Logger

	mu    sync.RWMutex
	items []Notification
	owner string
}

// Option configures a Feed.
type Option func(*Feed)

// WithLogger attaches a structured logger for feed diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(f *Feed) {
		f.log = log
	}
}

// New creates a feed over the given source, scoped to whatever identity the
// IdentitySource reports at load time.
func New(source Source, ids IdentitySource, opts ...Option) *Feed {
	f := &Feed{
		source: source,
		ids:    ids,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.Named("feed")
	return f
}

// Load fetches the source and replaces the whole collection with the result.
// Replacing rather than merging makes overlapping loads last-write-wins safe
// and repeated loads idempotent with respect to the source's current state.
//
// Without an authenticated identity Load is a no-op. A fetch failure keeps
// the previous collection so a transient outage never blanks the view.
func (f *Feed) Load(ctx context.Context) {
	who, ok := f.ids.Identity()
	if !ok {
		f.log.Debug("load skipped, no authenticated identity")
		return
	}

	items, err := f.source.Fetch(ctx, who)
	if err != nil {
		f.log.Warn("failed to fetch notifications, keeping previous list", zap.Error(err))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
	f.owner = who.ID
}

// Notifications returns a copy of the current collection.
func (f *Feed) Notifications() []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// MarkRead flags the matching notification as read. An absent id is a no-op.
func (f *Feed) MarkRead(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every notification as read.
func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		f.items[i].Read = true
	}
}

// UnreadCount counts the entries still unread. It is recomputed on every
// call, never cached.
func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	count := 0
	for _, n := range f.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Push prepends a locally generated notification for the current identity.
// This mirrors the legacy in-app notification path and stays separate from
// the source-backed entries; the next Load replaces it like everything else.
func (f *Feed) Push(title, message string, level Level) {
	who, ok := f.ids.Identity()
	if !ok {
		f.log.Debug("push skipped, no authenticated identity")
		return
	}
	n := Notification{
		ID:             uuid.NewString(),
		Title:          title,
		Message:        message,
		Level:          level,
		Read:           false,
		CreatedAt:      time.Now().UTC(),
		UserID:         who.ID,
		OrganizationID: who.OrganizationID,
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]Notification{n}, f.items...)
}

// Reset discards the collection. Called on logout or identity change so one
// user's notifications never leak into the next session.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
	f.owner = ""
}

// Owner returns the user id the current collection was loaded for.
func (f *Feed) Owner() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.owner
}

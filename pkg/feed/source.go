package feed

import (
	"context"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// Source materializes the notification list for an identity. Two strategies
// exist and are deliberately kept distinct: AuditSource is the canonical
// live-backed feed, StaticSource is the legacy seeded variant. They are
// never merged.
type Source interface {
	Fetch(ctx context.Context, who sdk.Identity) ([]Notification, error)
}

// AuditSource builds notifications from the remote audit log. This is the
// canonical source.
type AuditSource struct {
	client *sdk.Client
}

// NewAuditSource creates the audit-log-backed source.
func NewAuditSource(client *sdk.Client) *AuditSource {
	return &AuditSource{client: client}
}

// Fetch pulls the audit trail and maps every entry to a notification.
func (s *AuditSource) Fetch(ctx context.Context, who sdk.Identity) ([]Notification, error) {
	entries, err := s.client.ListAuditLogs(ctx)
	if err != nil {
		return nil, err
	}
	notifications := make([]Notification, 0, len(entries))
	for _, entry := range entries {
		notifications = append(notifications, FromAuditEntry(entry))
	}
	return notifications, nil
}

// StaticSource serves a fixed seeded list filtered to the requesting user.
// It predates the audit-backed feed and survives for demos and tests.
type StaticSource struct {
	seed []Notification
}

// NewStaticSource creates a source over a fixed notification list.
func NewStaticSource(seed []Notification) *StaticSource {
	return &StaticSource{seed: seed}
}

// Fetch returns the seeded entries owned by the requesting user.
func (s *StaticSource) Fetch(_ context.Context, who sdk.Identity) ([]Notification, error) {
	var owned []Notification
	for _, n := range s.seed {
		if n.UserID == who.ID {
			owned = append(owned, n)
		}
	}
	return owned, nil
}

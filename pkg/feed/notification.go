package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// Level classifies a notification for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one entry in the per-user feed. Entries are created by
// mapping audit-log records at fetch time (or pushed locally) and only ever
// mutate through read-flag transitions.
type Notification struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Level          Level     `json:"type"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
	UserID         string    `json:"userId"`
	OrganizationID string    `json:"organizationId,omitempty"`
}

// FromAuditEntry maps a raw audit record to a notification. The audit source
// does not track read state, so the read flag always starts false.
func FromAuditEntry(entry sdk.AuditEntry) Notification {
	return Notification{
		ID:             entry.ID,
		Title:          auditTitle(entry),
		Message:        auditMessage(entry),
		Level:          levelForAction(entry.Action),
		Read:           false,
		CreatedAt:      entry.CreatedAt,
		UserID:         entry.UserID,
		OrganizationID: entry.OrganizationID,
	}
}

// levelForAction maps audit actions onto display levels: creations read as
// success, updates as info, deletions as error, anything unrecognized as
// warning.
func levelForAction(action string) Level {
	switch strings.ToUpper(strings.TrimSpace(action)) {
	case "CREATE":
		return LevelSuccess
	case "UPDATE":
		return LevelInfo
	case "DELETE":
		return LevelError
	default:
		return LevelWarning
	}
}

func auditTitle(entry sdk.AuditEntry) string {
	entity := entry.Entity
	if entity == "" {
		entity = "Record"
	}
	switch strings.ToUpper(strings.TrimSpace(entry.Action)) {
	case "CREATE":
		return fmt.Sprintf("%s created", entity)
	case "UPDATE":
		return fmt.Sprintf("%s updated", entity)
	case "DELETE":
		return fmt.Sprintf("%s deleted", entity)
	default:
		return fmt.Sprintf("%s activity", entity)
	}
}

func auditMessage(entry sdk.AuditEntry) string {
	if entry.Details != "" {
		return entry.Details
	}
	return fmt.Sprintf("Audit action %s recorded", entry.Action)
}

package session

import (
	"errors"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// ErrNoSession is returned by Store.Load when no snapshot has been persisted.
var ErrNoSession = errors.New("no stored session")

// Store persists the session snapshot (access token + identity) in durable
// client-side storage. Token and identity are saved and deleted as a unit;
// the Manager is the only writer.
type Store interface {
	// Save persists the snapshot, replacing any previous one.
	Save(creds *sdk.Credentials) error
	// Load returns the persisted snapshot, or ErrNoSession when absent.
	Load() (*sdk.Credentials, error)
	// Delete removes the snapshot. Deleting an absent snapshot is not an error.
	Delete() error
}

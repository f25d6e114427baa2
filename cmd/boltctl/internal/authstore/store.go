// Package authstore is the CLI's durable session storage: a JSON snapshot of
// the access token and identity under ~/.bolt, plus the persisted refresh
// cookie. Only the session manager writes here.
package authstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/session"
)

const sessionFile = "session.json"

// Dir returns the boltctl state directory (~/.bolt), creating it on first use.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".bolt")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// FileStore implements session.Store using a JSON file.
type FileStore struct {
	path string
}

// Ensure FileStore implements session.Store at compile time.
var _ session.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted in the given state directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, sessionFile)}
}

// Save persists the snapshot. The file is written in one operation so token
// and identity can never be observed apart.
func (s *FileStore) Save(creds *sdk.Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. A missing file maps to
// session.ErrNoSession; an unreadable or corrupt file is an error the caller
// treats as malformed state.
func (s *FileStore) Load() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, session.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var creds sdk.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	return &creds, nil
}

// Delete removes the snapshot. An absent file is not an error.
func (s *FileStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

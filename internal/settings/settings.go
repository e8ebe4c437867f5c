// Package settings persists small console preferences as a JSON file:
// currently the "last successful login" marker shown on the next start.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dkorsakov/clinickeeper/internal/models"
)

// now is a test seam for timestamping the last-login marker.
var now = time.Now

// Settings is the persisted document. Zero value means "nothing saved yet".
type Settings struct {
	LastUsername string `json:"last_username,omitempty"`
	LastRole     string `json:"last_role,omitempty"`
	LastLogin    string `json:"last_login,omitempty"`
}

// Store reads and writes the settings file. A missing or unreadable file is
// treated as empty settings, never as an error: preferences are best-effort.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved settings, or zero settings when the file is
// missing or corrupt.
func (s *Store) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Settings{}
	}
	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Settings{}
	}
	return loaded
}

// PersistLastLogin records the user as the most recent successful login.
func (s *Store) PersistLastLogin(user *models.AppUser) error {
	return s.save(Settings{
		LastUsername: user.Username(),
		LastRole:     user.Role(),
		LastLogin:    now().UTC().Format(time.RFC3339),
	})
}

// Clear resets the file to zero settings.
func (s *Store) Clear() error {
	return s.save(Settings{})
}

func (s *Store) save(data Settings) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to prepare settings dir: %w", err)
		}
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, encoded, 0o600); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}

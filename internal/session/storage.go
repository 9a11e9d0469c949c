package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Fixed storage keys, mirroring the two entries the original client kept in
// browser local storage plus the bearer token added by the token redesign.
const (
	keyCurrentUser = "current_user"
	keyIsAdmin     = "is_admin"
	keyToken       = "token"
)

// Store is a small key-value file store under the user config dir. It is the
// session's persistence layer; a missing file simply means no session.
type Store struct {
	path string
}

// DefaultStorePath returns the session file location under the user config
// dir, creating the parent directory if needed.
func DefaultStorePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, "laundry-booking")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(appDir, "session.json"), nil
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupt session file is treated as no session rather than a
		// fatal error; the user can simply log in again.
		return map[string]string{}, nil
	}
	return values, nil
}

func (s *Store) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Get returns the value for key, or "" when absent.
func (s *Store) Get(key string) (string, error) {
	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set writes one key, preserving the others.
func (s *Store) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Clear removes the backing file entirely.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

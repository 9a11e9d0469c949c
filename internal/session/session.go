// Package session tracks the authenticated identity for the lifetime of the
// process and mirrors it to a file so a restart restores the session without
// re-entering credentials.
package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"laundry-booking-client/internal/model"
)

// Manager holds the current session in memory and keeps the persisted copy
// in sync. The zero identity means no session is active. Auth flows and
// background fetches run on separate goroutines, so all field access goes
// through the mutex.
type Manager struct {
	store *Store

	mu       sync.RWMutex
	identity *model.Identity
	isAdmin  bool
	token    string
}

// NewManager creates a manager over the given store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Establish records identity as the active session, both in memory and in
// the persisted store. token may be empty when the backend issues none.
func (m *Manager) Establish(identity model.Identity, isAdmin bool, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := identity
	m.identity = &id
	m.isAdmin = isAdmin
	m.token = token

	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to serialize identity: %w", err)
	}
	if err := m.store.Set(keyCurrentUser, string(blob)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if err := m.store.Set(keyIsAdmin, strconv.FormatBool(isAdmin)); err != nil {
		return fmt.Errorf("failed to persist role flag: %w", err)
	}
	if err := m.store.Set(keyToken, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Restore loads a previously persisted session into memory. It reports
// whether one was found; validating it against the server is the caller's
// responsibility.
func (m *Manager) Restore() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, err := m.store.Get(keyCurrentUser)
	if err != nil {
		return false, fmt.Errorf("failed to read session store: %w", err)
	}
	if blob == "" {
		return false, nil
	}

	var identity model.Identity
	if err := json.Unmarshal([]byte(blob), &identity); err != nil {
		// Unreadable identity blob: discard the stored session.
		_ = m.store.Clear()
		return false, nil
	}

	flag, err := m.store.Get(keyIsAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to read role flag: %w", err)
	}
	token, err := m.store.Get(keyToken)
	if err != nil {
		return false, fmt.Errorf("failed to read token: %w", err)
	}

	m.identity = &identity
	m.isAdmin = flag == "true"
	m.token = token
	return true, nil
}

// Clear ends the session in memory and removes the persisted copy.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = nil
	m.isAdmin = false
	m.token = ""
	return m.store.Clear()
}

// Identity returns the active identity, if any.
func (m *Manager) Identity() (model.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.identity == nil {
		return model.Identity{}, false
	}
	return *m.identity, true
}

// IsAdmin reports whether the active session is an administrator session.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil && m.isAdmin
}

// Active reports whether any session is established.
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity != nil
}

// Bearer returns the credential to present on authenticated requests: the
// server-issued token when one exists, else the identity id.
func (m *Manager) Bearer() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.identity == nil {
		return ""
	}
	if m.token != "" {
		return m.token
	}
	return strconv.FormatInt(m.identity.ID, 10)
}

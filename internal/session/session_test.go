package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-booking-client/internal/model"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewManager(NewStore(path))
}

func TestManager_EstablishAndRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(NewStore(path))
	identity := model.Identity{ID: 5, StudentID: "21BCS001", Username: "Asha", Role: "user"}
	require.NoError(t, m.Establish(identity, false, "signed.token"))
	assert.True(t, m.Active())
	assert.False(t, m.IsAdmin())
	assert.Equal(t, "signed.token", m.Bearer())

	// A fresh manager over the same file restores the same session.
	restored := NewManager(NewStore(path))
	found, err := restored.Restore()
	require.NoError(t, err)
	require.True(t, found)

	got, ok := restored.Identity()
	require.True(t, ok)
	assert.Equal(t, identity, got)
	assert.False(t, restored.IsAdmin())
	assert.Equal(t, "signed.token", restored.Bearer())
}

func TestManager_RestoreAdminFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(NewStore(path))
	require.NoError(t, m.Establish(model.Identity{ID: 1, AdminID: "admin", Username: "Administrator", Role: "admin"}, true, ""))

	restored := NewManager(NewStore(path))
	found, err := restored.Restore()
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, restored.IsAdmin())
}

func TestManager_RestoreEmptyStore(t *testing.T) {
	m := newTestManager(t)
	found, err := m.Restore()
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, m.Active())
}

func TestManager_RestoreCorruptIdentityClearsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"current_user": "{not json", "is_admin": "false"}`), 0600))

	m := NewManager(NewStore(path))
	found, err := m.Restore()
	require.NoError(t, err)
	assert.False(t, found)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestManager_CorruptFileMeansNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0600))

	m := NewManager(NewStore(path))
	found, err := m.Restore()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManager_BearerFallsBackToID(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Establish(model.Identity{ID: 42, StudentID: "21BCS042"}, false, ""))
	assert.Equal(t, "42", m.Bearer())
}

func TestManager_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(NewStore(path))
	require.NoError(t, m.Establish(model.Identity{ID: 3}, false, "tok"))
	require.NoError(t, m.Clear())

	assert.False(t, m.Active())
	assert.Empty(t, m.Bearer())

	restored := NewManager(NewStore(path))
	found, err := restored.Restore()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManager_ConcurrentAuthAndReads(t *testing.T) {
	m := newTestManager(t)

	// A login establishing the session races with background fetches
	// reading the bearer and role flag; run under -race.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = m.Establish(model.Identity{ID: int64(i), StudentID: "21BCS001"}, i%2 == 0, "tok")
			_ = m.Clear()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = m.Bearer()
			_ = m.Active()
			_ = m.IsAdmin()
			_, _ = m.Identity()
		}
	}()
	wg.Wait()
}

func TestStore_SetPreservesOtherKeys(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))

	a, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", a)
}

package approval_store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
)

func TestFileStore_LoadMissingFileReturnsEmptyState(t *testing.T) {
	store := NewFileStore(WithPath(filepath.Join(t.TempDir(), "approvals.yaml")))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Pending)
	assert.Empty(t, state.Approved)
}

func TestFileStore_SaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "approvals.yaml")
	store := NewFileStore(WithPath(path))

	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	saved := &entities.ApprovalState{
		Pending: []entities.PendingSignature{
			{Signature: "staticMethod os RemoveAll string", User: "alice", Time: when},
		},
		Approved: []string{"method os/exec.Cmd Run"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved.Approved, loaded.Approved)
	require.Len(t, loaded.Pending, 1)
	assert.Equal(t, "staticMethod os RemoveAll string", loaded.Pending[0].Signature)
	assert.Equal(t, "alice", loaded.Pending[0].User)
	assert.True(t, when.Equal(loaded.Pending[0].Time))
}

func TestFileStore_SaveCreatesDirectoryAndRestrictsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "approvals.yaml")
	store := NewFileStore(WithPath(path))

	require.NoError(t, store.Save(&entities.ApprovalState{Approved: []string{"new os.File string"}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_LoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approvals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	store := NewFileStore(WithPath(path))
	_, err := store.Load()
	assert.Error(t, err)
}

func TestFileStore_ConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approvals.yaml")
	store := NewFileStore(WithPath(path))
	assert.Equal(t, path, store.ConfigPath())
}

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "processed.json"))

	want := map[string]int64{
		"/logs/device01.vc0": 8192,
		"/logs/device02.vc0": 123456,
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "processed.json"))
	require.NoError(t, store.Save(map[string]int64{"a": 1}))
	require.NoError(t, store.Save(map[string]int64{"b": 2}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"b": 2}, got)
}

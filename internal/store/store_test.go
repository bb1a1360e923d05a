package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/db"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	kvs := map[string]KV{
		"memory": NewMemory(),
		"file":   NewFile(filepath.Join(t.TempDir(), "nested", "state.json")),
		"sqlite": NewSQLite(d),
	}
	t.Cleanup(func() {
		for _, kv := range kvs {
			kv.Close()
		}
	})
	return kvs
}

func TestKVBackends(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set("k", "v1"))
			require.NoError(t, kv.Set("k", "v2"))
			got, ok, err := kv.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v2", got)

			require.NoError(t, kv.Delete("k"))
			_, ok, err = kv.Get("k")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting an absent key is not an error.
			require.NoError(t, kv.Delete("k"))
		})
	}
}

func TestMemoryClosed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	_, _, err := m.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Set("k", "v"), ErrClosed)
}

func TestFileSharesOneDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	a := NewFile(path)
	require.NoError(t, a.Set("one", "1"))

	b := NewFile(path)
	require.NoError(t, b.Set("two", "2"))

	v, ok, err := a.Get("two")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"one":"1","two":"2"}`, string(data))
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f := NewFile(path)
	_, _, err := f.Get("k")
	assert.Error(t, err)

	// A write replaces the corrupt document.
	require.NoError(t, f.Set("k", "v"))
	v, ok, err := f.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		cfg     config.StorageConfig
		want    any
		wantErr bool
	}{
		{config.StorageConfig{Driver: config.StorageMemory}, &Memory{}, false},
		{config.StorageConfig{Driver: config.StorageFile, Path: filepath.Join(dir, "s.json")}, &File{}, false},
		{config.StorageConfig{Driver: config.StorageSQLite, Path: filepath.Join(dir, "s.db")}, &SQLite{}, false},
		{config.StorageConfig{Driver: "redis"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.cfg.Driver), func(t *testing.T) {
			kv, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer kv.Close()
			assert.IsType(t, tt.want, kv)
		})
	}
}

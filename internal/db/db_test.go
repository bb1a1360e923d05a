package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	var count int
	require.NoError(t, d.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count))
	assert.Zero(t, count)
	assert.Equal(t, ":memory:", d.Path())
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	// Running migrate again should not fail.
	require.NoError(t, d.migrate())
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	d, err := Open(path)
	require.NoError(t, err)

	_, err = d.Exec("INSERT INTO kv(key, value) VALUES ('k', 'v')")
	require.NoError(t, err)
	require.NoError(t, d.Close())

	// Data survives reopening.
	d, err = Open(path)
	require.NoError(t, err)
	defer d.Close()

	var v string
	require.NoError(t, d.QueryRow("SELECT value FROM kv WHERE key = 'k'").Scan(&v))
	assert.Equal(t, "v", v)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	repos, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	defer repos.DB.Close()

	require.NotNil(t, repos.Users)
	require.NotNil(t, repos.Reports)

	// migrations must have created both tables
	for _, table := range []string{"users", "reports"} {
		var name string
		err := repos.DB.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDatabase_Idempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.DB.Close())

	repos, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer repos.DB.Close()
}

func TestEnsureDataDir(t *testing.T) {
	base := t.TempDir()
	dir, err := EnsureDataDir(filepath.Join(base, "data"))
	require.NoError(t, err)
	assert.DirExists(t, dir)

	// second call is a no-op
	again, err := EnsureDataDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

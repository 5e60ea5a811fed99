package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"leadlens/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	dsn := DSN(Config{Path: "/tmp/leads.db", BusyMs: 5000})
	assert.True(t, strings.HasPrefix(dsn, "file:/tmp/leads.db?"), dsn)
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_foreign_keys=on")

	mem := DSN(Config{Path: ":memory:"})
	assert.NotContains(t, mem, "_journal_mode")
	assert.NotContains(t, mem, "_busy_timeout")

	assert.True(t, strings.HasPrefix(DSN(Config{}), "file:data.sqlite?"))
}

func TestOpen_FileAndClose(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.db")
	s, err := Open(context.Background(), Config{Path: path, BusyMs: 1000}, nil)
	require.NoError(t, err)

	var mode string
	require.NoError(t, s.DB.QueryRow("pragma journal_mode").Scan(&mode))
	assert.Equal(t, "wal", strings.ToLower(mode))

	require.NoError(t, s.Close())

	var nilDB *SQLite
	assert.NoError(t, nilDB.Close())
}

func TestOpen_MemoryKeepsState(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{Path: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.DB.Exec("create table t (id integer primary key)")
	require.NoError(t, err)
	_, err = s.DB.Exec("insert into t (id) values (1)")
	require.NoError(t, err)

	var n int
	require.NoError(t, s.DB.QueryRow("select count(*) from t").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpen_DriverError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &openDB, func(string, string) (*sql.DB, error) {
		return nil, errors.New("boom")
	})

	_, err := Open(context.Background(), Config{Path: ":memory:"}, nil)
	assert.EqualError(t, err, "boom")
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "var", "lib", "leads.db")
	s, err := Open(context.Background(), Config{Path: path}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, path)
}

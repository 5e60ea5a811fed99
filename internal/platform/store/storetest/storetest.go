// Package storetest opens throwaway stores for package tests
package storetest

import (
	"context"
	"testing"

	"leadlens/internal/platform/store"
	"leadlens/internal/platform/store/migrate"

	"github.com/stretchr/testify/require"
)

// SQLite returns an in-memory sqlite store with every migration applied
// the store is closed when the test finishes
func SQLite(t testing.TB) *store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{
		Driver: string(store.DialectSQLite),
		SQLite: store.SQLiteConfig{Path: ":memory:"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	_, err = migrate.Up(ctx, st.DB, st.Dialect)
	require.NoError(t, err)
	return st
}

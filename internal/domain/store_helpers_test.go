package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"mcyview.dev/pkg/mcyview/internal/adapter"
	"mcyview.dev/pkg/mcyview/internal/testutil"
)

// openStore opens a fixture database through the SQLite store.
func openStore(t *testing.T, db *testutil.MutationDB) *adapter.SQLiteStore {
	t.Helper()

	store, err := adapter.OpenSQLiteStore(db.Path())
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func openTopV(t *testing.T) *adapter.SQLiteStore {
	t.Helper()
	return openStore(t, testutil.NewMutationDB(t).TopV())
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB creates a migrated database in a temporary directory
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := New(context.Background(), filepath.Join(t.TempDir(), "birthdays_test.db"))
	require.NoError(t, err, "Failed to create test database")

	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close test database")
	})

	return db
}

func countRows(t *testing.T, db *Database, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.GetDB().QueryRow(query, args...).Scan(&n))
	return n
}

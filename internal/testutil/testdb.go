package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/db"
)

// NewTestDB opens a migrated in-memory skill store scoped to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "open in-memory skill store")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps the test database in the production UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

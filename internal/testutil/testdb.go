package testutil

import (
	"database/sql"
	"testing"

	"github.com/nyayak/docket/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}

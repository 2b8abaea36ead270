package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Eyabennessib/rooma/internal/database"
)

// NewTestDatabase opens a migrated database in a per-test temp
// directory. A file-backed database (rather than :memory:) keeps every
// pool connection on the same data, which concurrency tests rely on.
func NewTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "rooma_test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

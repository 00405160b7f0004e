// Package testdb provides a migrated in-memory database for tests.
package testdb

import (
	"testing"

	"github.com/yamdb-api/database"
	"gorm.io/gorm"
)

// New opens a fresh in-memory SQLite database with the full schema
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.Options{Driver: database.DriverSQLite, URL: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

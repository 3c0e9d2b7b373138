// Package testutil provides shared test helpers for setting up quote stores.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/starford/quote-it/internal/storage"
	"github.com/starford/quote-it/internal/store"
)

// TestStoreDir returns a not-yet-created store directory under a temp dir.
func TestStoreDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), storage.DirName)
}

// TestDB bootstraps a store file in a temporary directory and opens it.
// The database is closed automatically.
func TestDB(t *testing.T) *store.DB {
	t.Helper()
	path, err := storage.Ensure(TestStoreDir(t), "quotes.db")
	if err != nil {
		t.Fatal(err)
	}
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

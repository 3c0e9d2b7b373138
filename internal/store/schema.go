// Package store provides the SQLite-backed quote store.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS quotes (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL CHECK (text <> ''),
	author     TEXT,
	date       TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quotes_author ON quotes(author);
CREATE INDEX IF NOT EXISTS idx_quotes_date ON quotes(date);
`

// DB wraps a sql.DB with quote-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at path and applies the schema.
// The file is held in exclusive locking mode for the life of the process, so a
// concurrent invocation fails fast instead of waiting.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_locking_mode=EXCLUSIVE&_journal_mode=WAL&_busy_timeout=0")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	// A second pooled connection would contend for the exclusive lock.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection and releases the lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// busyTimeoutMs is how long a connection waits on a locked database before
// failing with SQLITE_BUSY.
const busyTimeoutMs = 5000

// dsn carries the pragmas as query parameters; the driver applies them to
// every connection it opens. File databases begin transactions IMMEDIATE.
func dsn(path string) string {
	params := url.Values{}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMs))
	params.Add("_pragma", "foreign_keys(1)")
	if path != MemoryPath {
		params.Add("_pragma", "journal_mode(WAL)")
		params.Set("_txlock", "immediate")
	}
	return path + "?" + params.Encode()
}

// OpenDB opens the studypal SQLite database at path, creating the parent
// directory when needed, and applies all migrations. File databases run in
// WAL mode. An in-memory database is pinned to a single connection because
// every new connection would otherwise see an empty schema.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// Package history reads conversation transcripts from the Apple Messages
// database.
package history

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a read-only connection to chat.db. The file is owned by the
// Messages app; we never write to it.
type DB struct {
	*sql.DB
}

// Open opens the history database at path without write access.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history db %s: %w", path, err)
	}
	// Verify the file is actually there and readable.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open history db %s: %w", path, err)
	}
	return &DB{db}, nil
}

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openPragmas ride the DSN so every pooled connection gets them; a plain
// Exec would configure only the connection that happened to run it. WAL
// keeps readers unblocked during catalog imports, and the busy timeout
// covers the writer lock handover between CLI invocations sharing one file.
const openPragmas = "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// OpenDB opens the skill store at path, creating parent directories as
// needed, and brings the schema up to date. ":memory:" yields a private
// in-memory store.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", "file:"+path+"?"+openPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening skill store: %w", err)
	}

	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty
		// in-memory database.
		database.SetMaxOpenConns(1)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating skill store: %w", err)
	}

	return database, nil
}

package db

import (
	"database/sql"
	"fmt"
)

// migrations are run in order on every open; each statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sync_runs (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		window_start   TEXT NOT NULL,
		window_end     TEXT NOT NULL,
		synced_count   INTEGER NOT NULL DEFAULT 0,
		total_hours    REAL NOT NULL DEFAULT 0,
		total_earnings REAL NOT NULL DEFAULT 0,
		error          TEXT NOT NULL DEFAULT '',
		started_at     TEXT NOT NULL,
		finished_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_runs_user ON sync_runs(user_id, started_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; each statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS match_logs (
		id         TEXT PRIMARY KEY,
		channel_id TEXT NOT NULL,
		topic      TEXT NOT NULL,
		matched    INTEGER NOT NULL CHECK(matched IN (0, 1)),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_logs_created_at ON match_logs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_match_logs_topic ON match_logs(topic)`,
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

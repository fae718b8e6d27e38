package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order. Statements are written to
// be re-runnable; "duplicate column name" from ALTER TABLE is tolerated
// because the whole list executes on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		kind             TEXT NOT NULL
		                 CHECK(kind IN ('Court','Meeting','Deadline','Personal')),
		start_at         TEXT NOT NULL,
		end_at           TEXT NOT NULL,
		location         TEXT NOT NULL DEFAULT '',
		case_reference   TEXT NOT NULL DEFAULT '',
		client           TEXT NOT NULL DEFAULT '',
		opposing_counsel TEXT NOT NULL DEFAULT '',
		courtroom        TEXT NOT NULL DEFAULT '',
		documents        TEXT NOT NULL DEFAULT '[]',
		notes            TEXT NOT NULL DEFAULT '',
		distance_km      REAL NOT NULL DEFAULT 0,
		checklist        TEXT NOT NULL DEFAULT '{}',
		missing_docs     INTEGER NOT NULL DEFAULT 0,
		tight_deadline   INTEGER NOT NULL DEFAULT 0,
		aggressive_opp   INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	// Seed the reflow buffer so a fresh database has a usable gap.
	`INSERT OR IGNORE INTO settings (key, value) VALUES ('buffer_minutes', '20')`,
}

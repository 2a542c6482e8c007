package db

import (
	"database/sql"
)

// MigrateUp creates the schema if it does not exist.
//
// Layout notes:
//   - entries.seq keeps insertion order stable even when entry dates tie
//   - list-valued fields (topics, publish_days, best_for) are stored as
//     JSONB; they are read whole, never queried into
//   - weekly_goal is a singleton row enforced by CHECK (id = 1)
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS custom_sources (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    media_type   VARCHAR(20) NOT NULL,
    frequency    TEXT NOT NULL DEFAULT '',
    publish_days JSONB NOT NULL DEFAULT '[]',
    duration     TEXT NOT NULL DEFAULT '',
    topics       JSONB NOT NULL DEFAULT '[]',
    best_for     JSONB NOT NULL DEFAULT '[]',
    url          TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS entries (
    id              TEXT PRIMARY KEY,
    seq             BIGSERIAL,
    source_id       TEXT NOT NULL,
    source_name     TEXT NOT NULL,
    media_type      VARCHAR(20) NOT NULL,
    topics          JSONB NOT NULL DEFAULT '[]',
    title           TEXT NOT NULL,
    logged_at       TIMESTAMPTZ NOT NULL,
    key_insight     TEXT NOT NULL,
    interview_angle TEXT NOT NULL DEFAULT ''
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS weekly_goal (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    target     INTEGER NOT NULL,
    week_start TIMESTAMPTZ NOT NULL
)`); err != nil {
		return err
	}

	indexes := []string{
		// CountSince and the streak window scan by logged_at
		`CREATE INDEX IF NOT EXISTS idx_entries_logged_at ON entries(logged_at DESC)`,
		// per-source lookups when a source is deleted or inspected
		`CREATE INDEX IF NOT EXISTS idx_entries_source_id ON entries(source_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_seq ON entries(seq)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_entries_seq`,
		`DROP INDEX IF EXISTS idx_entries_source_id`,
		`DROP INDEX IF EXISTS idx_entries_logged_at`,
		`DROP TABLE IF EXISTS weekly_goal`,
		`DROP TABLE IF EXISTS entries`,
		`DROP TABLE IF EXISTS custom_sources`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

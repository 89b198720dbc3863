package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS topic_ratings (
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic_id   TEXT NOT NULL,
		rating     INTEGER NOT NULL CHECK(rating IN (-2, 0, 1, 2, 3, 4, 5)),
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, topic_id)
	)`,

	`CREATE TABLE IF NOT EXISTS time_preferences (
		user_id           TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		weekday_start_min INTEGER NOT NULL,
		weekday_end_min   INTEGER NOT NULL,
		weekend_start_min INTEGER NOT NULL,
		weekend_end_min   INTEGER NOT NULL,
		use_weekday_times INTEGER NOT NULL DEFAULT 0,
		session_minutes   INTEGER NOT NULL DEFAULT 60,
		slot_reserve_pct  REAL NOT NULL DEFAULT 0.2
	)`,

	`CREATE TABLE IF NOT EXISTS blocked_times (
		id       TEXT PRIMARY KEY,
		user_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		start_at TEXT NOT NULL,
		end_at   TEXT NOT NULL,
		label    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS commitments (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		label         TEXT NOT NULL DEFAULT '',
		start_date    TEXT NOT NULL,
		end_date      TEXT,
		weekday_mask  INTEGER NOT NULL,
		day_start_min INTEGER NOT NULL,
		day_end_min   INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic_id     TEXT NOT NULL,
		scheduled_at TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		status       TEXT NOT NULL CHECK(status IN ('scheduled','done','missed')),
		rationale    TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_user_time
		ON study_sessions(user_id, scheduled_at)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_user_topic
		ON study_sessions(user_id, topic_id)`,

	`CREATE INDEX IF NOT EXISTS idx_blocked_user_time
		ON blocked_times(user_id, start_at)`,
}

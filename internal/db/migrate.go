package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement in order. Statements are written to
// be re-runnable, so Migrate is safe to call on an already migrated database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		due_date     TEXT NOT NULL,
		due_time     TEXT NOT NULL DEFAULT '',
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		difficulty   TEXT NOT NULL DEFAULT 'medium'
		             CHECK(difficulty IN ('easy','medium','hard')),
		category     TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks(user_id, due_date)`,

	`ALTER TABLE tasks ADD COLUMN source TEXT NOT NULL DEFAULT 'manual'`,

	`CREATE TABLE IF NOT EXISTS personality_settings (
		user_id    TEXT PRIMARY KEY,
		fierceness INTEGER NOT NULL DEFAULT 0,
		style      INTEGER NOT NULL DEFAULT 0,
		adaptive   INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS student_profiles (
		user_id                  TEXT PRIMARY KEY,
		stress_level             INTEGER NOT NULL DEFAULT 0,
		learning_style           TEXT NOT NULL DEFAULT 'visual',
		preferred_time_of_day    TEXT NOT NULL DEFAULT 'morning',
		average_task_duration    REAL NOT NULL DEFAULT 0,
		procrastination_tendency REAL NOT NULL DEFAULT 0,
		completion_rate          REAL NOT NULL DEFAULT 0,
		last_active_hours        TEXT NOT NULL DEFAULT '[]',
		motivation_level         INTEGER NOT NULL DEFAULT 5,
		last_updated             TEXT NOT NULL
	)`,
}

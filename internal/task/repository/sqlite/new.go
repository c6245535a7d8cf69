package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/log"
)

// Schema creates the tasks table.
const Schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL,
	notes               TEXT NOT NULL DEFAULT '',
	priority            TEXT NOT NULL,
	required_seconds    INTEGER NOT NULL,
	completed_seconds   INTEGER NOT NULL DEFAULT 0,
	min_chunk_seconds   INTEGER NOT NULL DEFAULT 0,
	max_chunk_seconds   INTEGER NOT NULL DEFAULT 0,
	schedule_not_before INTEGER NOT NULL DEFAULT 0,
	due_date            INTEGER NOT NULL DEFAULT 0,
	created_at          INTEGER NOT NULL,
	updated_at          INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_open ON tasks(completed_seconds, required_seconds);
`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed task Repository. The tasks table must exist.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

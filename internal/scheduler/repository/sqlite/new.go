package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"task-scheduler/internal/scheduler/repository"
	"task-scheduler/pkg/log"
)

// Schema creates the bookings and meetings tables. Bookings reference the
// tasks table, which must be created first.
const Schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id               TEXT PRIMARY KEY,
	task_id          TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	title            TEXT NOT NULL,
	priority         TEXT NOT NULL,
	start_ts         INTEGER NOT NULL,
	end_ts           INTEGER NOT NULL,
	duration_seconds INTEGER NOT NULL,
	slot_index       INTEGER NOT NULL DEFAULT 0,
	status           TEXT NOT NULL,
	external_id      TEXT NOT NULL DEFAULT '',
	created_at       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookings_status_start ON bookings(status, start_ts);
CREATE INDEX IF NOT EXISTS idx_bookings_task ON bookings(task_id);

CREATE TABLE IF NOT EXISTS meetings (
	id         TEXT PRIMARY KEY,
	start_ts   INTEGER NOT NULL,
	end_ts     INTEGER NOT NULL,
	summary    TEXT NOT NULL DEFAULT '',
	source     TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meetings_span ON meetings(start_ts, end_ts);
`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates the SQLite-backed booking and meeting store.
func New(db *sql.DB, l log.Logger) repository.Store {
	if db == nil {
		panic("scheduler/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("scheduler/repository/sqlite.%s", method)
}

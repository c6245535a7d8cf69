package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/scheduler/repository"
	pkgSqlite "task-scheduler/pkg/sqlite"
)

// MeetingSource tags busy intervals read from the meetings table.
const MeetingSource = "meetings"

var meetingNamespace = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8") // OID namespace

// ListBusy returns stored meetings overlapping [From, To).
func (r *implRepository) ListBusy(ctx context.Context, opt repo.ListBusyOptions) ([]model.BusyInterval, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT start_ts, end_ts, summary, source FROM meetings
		 WHERE end_ts > ? AND start_ts < ? ORDER BY start_ts`,
		opt.From.Unix(), opt.To.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBusy"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var busy []model.BusyInterval
	for rows.Next() {
		var start, end int64
		var summary, source string
		if err := rows.Scan(&start, &end, &summary, &source); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBusy"), err)
			return nil, repo.ErrFailedToList
		}
		if source == "" {
			source = MeetingSource
		}
		busy = append(busy, model.BusyInterval{
			Start:   pkgSqlite.Time(start),
			End:     pkgSqlite.Time(end),
			Kind:    model.BusyExternalMeeting,
			Source:  source,
			Summary: summary,
		})
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBusy"), err)
		return nil, repo.ErrFailedToList
	}
	return busy, nil
}

// UpsertMeetings stores meetings, skipping ones already present. It returns
// how many were new.
func (r *implRepository) UpsertMeetings(ctx context.Context, meetings []model.BusyInterval) (int, error) {
	var inserted int
	err := pkgSqlite.InTx(ctx, r.db, func(tx *sql.Tx) error {
		inserted = 0
		now := r.now().Unix()
		for _, m := range meetings {
			out, err := tx.ExecContext(ctx,
				`INSERT INTO meetings (id, start_ts, end_ts, summary, source, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)
				 ON CONFLICT(id) DO NOTHING`,
				meetingID(m), m.Start.Unix(), m.End.Unix(), m.Summary, m.Source, now,
			)
			if err != nil {
				return err
			}
			n, err := out.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertMeetings"), err)
		return 0, repo.ErrFailedToCommit
	}
	return inserted, nil
}

func meetingID(m model.BusyInterval) string {
	key := fmt.Sprintf("%d|%d|%s", m.Start.Unix(), m.End.Unix(), m.Summary)
	return uuid.NewSHA1(meetingNamespace, []byte(key)).String()
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/scheduler/repository"
	pkgSqlite "task-scheduler/pkg/sqlite"
)

const bookingColumns = `id, task_id, title, priority, start_ts, end_ts, duration_seconds, slot_index, status, external_id`

// ListBookings returns bookings ordered by start.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	where, args := r.buildBookingFilter(opt)
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY start_ts, id`, bookingColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return bookings, nil
}

// FreezeBookings locks planned bookings and adds their duration to the
// owning tasks. Bookings that are missing or already locked are ignored.
func (r *implRepository) FreezeBookings(ctx context.Context, ids []string) ([]model.Booking, error) {
	var frozen []model.Booking
	err := pkgSqlite.InTx(ctx, r.db, func(tx *sql.Tx) error {
		frozen = frozen[:0]
		now := r.now().Unix()
		for _, id := range ids {
			row := tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ? AND status = ?`, id, string(model.BookingPlanned))
			b, err := scanBooking(row)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, string(model.BookingLocked), id); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE tasks SET completed_seconds = completed_seconds + ?, updated_at = ? WHERE id = ?`,
				b.DurationSeconds, now, b.TaskID,
			); err != nil {
				return err
			}
			b.Status = model.BookingLocked
			frozen = append(frozen, b)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FreezeBookings"), err)
		return nil, repo.ErrFailedToUpdate
	}
	return frozen, nil
}

// CommitDay applies one day's deletions and insertions in one transaction.
func (r *implRepository) CommitDay(ctx context.Context, opt repo.CommitDayOptions) (repo.CommitDayResult, error) {
	var res repo.CommitDayResult
	err := pkgSqlite.InTx(ctx, r.db, func(tx *sql.Tx) error {
		res = repo.CommitDayResult{}
		for _, id := range opt.Delete {
			out, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = ? AND status = ?`, id, string(model.BookingPlanned))
			if err != nil {
				return err
			}
			n, err := out.RowsAffected()
			if err != nil {
				return err
			}
			res.Deleted += int(n)
		}

		now := r.now().Unix()
		for _, b := range opt.Insert {
			out, err := tx.ExecContext(ctx,
				`INSERT INTO bookings (`+bookingColumns+`, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				 ON CONFLICT(id) DO NOTHING`,
				b.ID, b.TaskID, b.Title, string(b.Priority), b.Start.Unix(), b.End.Unix(),
				b.DurationSeconds, b.SlotIndex, string(b.Status), b.ExternalID, now,
			)
			if err != nil {
				return err
			}
			n, err := out.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				res.Duplicates++
				continue
			}
			res.Inserted = append(res.Inserted, b)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CommitDay"), err)
		return repo.CommitDayResult{}, repo.ErrFailedToCommit
	}
	return res, nil
}

// SetExternalID records the calendar event mirroring a booking.
func (r *implRepository) SetExternalID(ctx context.Context, id, externalID string) error {
	err := pkgSqlite.Retry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `UPDATE bookings SET external_id = ? WHERE id = ?`, externalID, id)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetExternalID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// buildBookingFilter builds the WHERE clause + args for ListBookings.
func (r *implRepository) buildBookingFilter(opt repo.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, "end_ts > ?")
		args = append(args, opt.From.Unix())
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, "start_ts < ?")
		args = append(args, opt.To.Unix())
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (model.Booking, error) {
	var (
		b                model.Booking
		priority, status string
		startTs, endTs   int64
	)
	err := s.Scan(&b.ID, &b.TaskID, &b.Title, &priority, &startTs, &endTs,
		&b.DurationSeconds, &b.SlotIndex, &status, &b.ExternalID)
	if err != nil {
		return model.Booking{}, err
	}
	b.Priority = model.Priority(priority)
	b.Status = model.BookingStatus(status)
	b.Start = pkgSqlite.Time(startTs)
	b.End = pkgSqlite.Time(endTs)
	return b, nil
}

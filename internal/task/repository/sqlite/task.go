package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
	pkgSqlite "task-scheduler/pkg/sqlite"
)

const taskColumns = `id, name, notes, priority, required_seconds, completed_seconds,
	min_chunk_seconds, max_chunk_seconds, schedule_not_before, due_date, created_at, updated_at`

// CreateTask inserts a new task and returns it.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := r.now().UTC().Truncate(time.Second)
	t := model.Task{
		ID:                uuid.NewString(),
		Name:              opt.Name,
		Notes:             opt.Notes,
		Priority:          opt.Priority,
		RequiredSeconds:   opt.RequiredSeconds,
		MinChunkSeconds:   opt.MinChunkSeconds,
		MaxChunkSeconds:   opt.MaxChunkSeconds,
		ScheduleNotBefore: pkgSqlite.Time(pkgSqlite.Unix(opt.ScheduleNotBefore)),
		DueDate:           pkgSqlite.Time(pkgSqlite.Unix(opt.DueDate)),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	const query = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, 0, ?, ?, ?, ?, ?, ?)`
	err := pkgSqlite.Retry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query,
			t.ID, t.Name, t.Notes, string(t.Priority), t.RequiredSeconds,
			t.MinChunkSeconds, t.MaxChunkSeconds,
			pkgSqlite.Unix(t.ScheduleNotBefore), pkgSqlite.Unix(t.DueDate),
			now.Unix(), now.Unix(),
		)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask returns repo.ErrNotFound when no task has the id.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of tasks, newest first, and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where), args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC, id %s`, taskColumns, where, r.buildPage(opt))
	tasks, err := r.query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// ListOpenTasks returns every task with time left, oldest first.
func (r *implRepository) ListOpenTasks(ctx context.Context) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE completed_seconds < required_seconds ORDER BY created_at, id`
	tasks, err := r.query(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOpenTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// DeleteTask removes a task and, through the foreign key, its bookings.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	var affected int64
	err := pkgSqlite.Retry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if affected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) query(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                                model.Task
		priority                         string
		notBefore, due, created, updated int64
	)
	err := s.Scan(&t.ID, &t.Name, &t.Notes, &priority, &t.RequiredSeconds, &t.CompletedSeconds,
		&t.MinChunkSeconds, &t.MaxChunkSeconds, &notBefore, &due, &created, &updated)
	if err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.ScheduleNotBefore = pkgSqlite.Time(notBefore)
	t.DueDate = pkgSqlite.Time(due)
	t.CreatedAt = pkgSqlite.Time(created)
	t.UpdatedAt = pkgSqlite.Time(updated)
	return t, nil
}

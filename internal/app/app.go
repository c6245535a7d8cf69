// Package app wires configuration into the task and scheduler domains. It is
// shared by the HTTP server and the one-shot CLI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"task-scheduler/config"
	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/repository"
	gcalRepo "task-scheduler/internal/scheduler/repository/gcal"
	schedulerSqlite "task-scheduler/internal/scheduler/repository/sqlite"
	schedulerUC "task-scheduler/internal/scheduler/usecase"
	"task-scheduler/internal/task"
	taskSqlite "task-scheduler/internal/task/repository/sqlite"
	taskUC "task-scheduler/internal/task/usecase"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/gcalendar"
	"task-scheduler/pkg/log"
	pkgSqlite "task-scheduler/pkg/sqlite"
)

// ErrCalendarUnavailable is returned when a calendar is configured but its
// client cannot be built. Scheduling without it would book over meetings.
var ErrCalendarUnavailable = errors.New("google calendar configured but unavailable")

// App holds the wired use cases and the resources they share.
type App struct {
	DB        *sql.DB
	DateMath  *datemath.Parser
	Options   scheduler.Options
	Tasks     task.UseCase
	Scheduler scheduler.UseCase
}

// New opens the database, connects the optional calendar and builds the use
// cases. Invalid scheduling configuration is reported before anything opens.
// A configured calendar that cannot be reached fails New.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	// 1. Scheduling policy
	opt, err := cfg.Scheduler.Options()
	if err != nil {
		return nil, fmt.Errorf("scheduler config: %w", err)
	}
	dateMath, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, err
	}

	// 2. Storage
	db, err := pkgSqlite.Connect(ctx, pkgSqlite.Config{
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout,
	}, taskSqlite.Schema, schedulerSqlite.Schema)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	l.Infof(ctx, "Storage opened at %s", cfg.Storage.Path)

	taskRepo := taskSqlite.New(db, l)
	store := schedulerSqlite.New(db, l)

	// 3. Busy sources: stored meetings, plus Google Calendar when configured
	busy := []repository.BusySource{store}
	ucOpts := []schedulerUC.Option{schedulerUC.WithMeetings(store)}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			l.Errorf(ctx, "Google Calendar not available: %v", err)
			l.Error(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate the token file, or clear google_calendar.credentials_path")
			db.Close()
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		cal := gcalRepo.New(calendarClient, gcalRepo.Options{
			CalendarID:    cfg.GoogleCalendar.CalendarID,
			Location:      opt.Location,
			IncludeAllDay: cfg.GoogleCalendar.IncludeAllDay,
		}, l)
		busy = append(busy, cal)
		if cfg.GoogleCalendar.PublishBookings {
			ucOpts = append(ucOpts, schedulerUC.WithPublisher(cal))
		}
		l.Infof(ctx, "✅ Google Calendar initialized (calendar %s, publish=%t)",
			cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.PublishBookings)
	}

	// 4. Use cases
	return &App{
		DB:        db,
		DateMath:  dateMath,
		Options:   opt,
		Tasks:     taskUC.New(l, taskRepo, dateMath),
		Scheduler: schedulerUC.New(l, taskRepo, store, repository.MultiBusySource(busy...), opt, ucOpts...),
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

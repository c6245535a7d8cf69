package cron

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"

	"task-scheduler/internal/scheduler"
	pkgLog "task-scheduler/pkg/log"
)

// Start schedules the job. Runs use ctx as their parent, so cancelling it
// aborts an in-flight run.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.c != nil {
		return
	}

	logger := cronLogger{l: w.l, ctx: ctx}
	w.c = cron.New(
		cron.WithParser(w.parser),
		cron.WithLocation(w.opt.Location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := w.c.AddFunc(w.opt.Spec, func() { w.tick(ctx) }); err != nil {
		// The spec was validated in New.
		w.l.Errorf(ctx, "scheduler.cron.Start: %v", err)
		w.c = nil
		return
	}
	w.c.Start()
	w.l.Infof(ctx, "scheduler.cron.Start: running on %q (%s)", w.opt.Spec, w.opt.Location)
}

// Stop stops scheduling and waits for a running job to return.
func (w *Worker) Stop(ctx context.Context) {
	w.mu.Lock()
	c := w.c
	w.c = nil
	w.mu.Unlock()
	if c == nil {
		return
	}
	select {
	case <-c.Stop().Done():
		w.l.Info(ctx, "scheduler.cron.Stop: stopped")
	case <-ctx.Done():
		w.l.Warnf(ctx, "scheduler.cron.Stop: gave up waiting for the running job: %v", ctx.Err())
	}
}

// tick performs one run.
func (w *Worker) tick(parent context.Context) {
	if parent.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(parent, w.opt.Timeout)
	defer cancel()

	out, err := w.uc.Run(ctx, scheduler.RunInput{})
	switch {
	case errors.Is(err, scheduler.ErrRunInProgress):
		w.l.Infof(ctx, "scheduler.cron.tick: skipped, a run is already in progress")
	case err != nil:
		w.l.Errorf(ctx, "scheduler.cron.tick: %v", err)
	default:
		w.l.Infof(ctx, "scheduler.cron.tick: run %s created %d bookings, %d tasks remaining",
			out.RunID, out.TotalBookings, len(out.Remaining))
	}
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	l   pkgLog.Logger
	ctx context.Context
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugf(c.ctx, "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorf(c.ctx, "cron: %s: %v %v", msg, err, keysAndValues)
}

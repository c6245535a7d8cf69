package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/engine"
	"task-scheduler/internal/scheduler/repository"
	"task-scheduler/pkg/interval"
	pkgLog "task-scheduler/pkg/log"
)

// Run reconciles planned bookings against the calendar and fills the horizon
// day by day. Reads all happen before the first write; each day is committed
// atomically before the next day is planned.
func (uc *implUseCase) Run(ctx context.Context, input scheduler.RunInput) (scheduler.RunOutput, error) {
	if !uc.running.TryLock() {
		return scheduler.RunOutput{}, scheduler.ErrRunInProgress
	}
	defer uc.running.Unlock()

	opt := uc.opt
	if input.Days > 0 {
		opt.HorizonDays = input.Days
	}
	if err := opt.Validate(); err != nil {
		return scheduler.RunOutput{}, err
	}

	now := uc.now().In(opt.Location)
	out := scheduler.RunOutput{RunID: uuid.NewString(), StartedAt: now}
	ctx = pkgLog.WithRunID(ctx, out.RunID)

	windows, err := engine.Windows(engine.HorizonOptions{
		Now:       ceilMinute(now),
		Days:      opt.HorizonDays,
		WorkStart: opt.WorkStart,
		WorkEnd:   opt.WorkEnd,
		Workdays:  opt.Workdays,
		Location:  opt.Location,
	})
	if err != nil {
		return scheduler.RunOutput{}, err
	}
	if len(windows) == 0 {
		uc.l.Infof(ctx, "scheduler.Run: no eligible day in the next %d days", opt.HorizonDays)
		out.FinishedAt = uc.now().In(opt.Location)
		uc.remember(out)
		return out, nil
	}

	snap, err := uc.readSnapshot(ctx, windows, now)
	if err != nil {
		uc.l.Errorf(ctx, "scheduler.Run readSnapshot: %v", err)
		return scheduler.RunOutput{}, err
	}
	tb := newTaskBook(snap.tasks)

	var past, future []model.Booking
	for _, b := range snap.planned {
		if b.End.After(now) {
			future = append(future, b)
		} else {
			past = append(past, b)
		}
	}

	out.Frozen, err = uc.freeze(ctx, past, tb)
	if err != nil {
		return scheduler.RunOutput{}, err
	}

	blockers := interval.Merge(model.Intervals(append(slices.Clone(snap.busy), model.BookingsBusy(snap.locked)...)))
	cls := classify(future, blockers, tb, windows)

	busy := append(blockers, model.Intervals(model.BookingsBusy(cls.keptAll))...)
	allocOpt := engine.AllocateOptions{
		Break:           opt.Break,
		DefaultMinChunk: opt.MinChunk,
		DefaultMaxChunk: opt.MaxChunk,
		StepSeconds:     opt.Step,
	}
	rankOpt := engine.RankOptions{Mode: opt.RankMode, Now: now, UrgencyWindow: opt.UrgencyWindow}

	for i, w := range windows {
		day := scheduler.DayReport{
			Index:       w.Index,
			Date:        w.Date,
			WindowStart: w.Start,
			WindowEnd:   w.End,
			Kept:        cls.kept[i],
			Conflicts:   cls.conflicts[i],
		}

		var result model.ScheduleResult
		if open := tb.open(w.End); len(open) > 0 {
			slots, err := engine.BuildFreeSlots(w.Start, w.End, busy, opt.Break, w.Index)
			if err != nil {
				uc.l.Warnf(ctx, "scheduler.Run: skipping day %s: %v", w.Date.Format("2006-01-02"), err)
			} else {
				result = engine.Allocate(engine.Rank(open, rankOpt), slots, allocOpt)
			}
		}

		if len(day.Conflicts) > 0 || len(result.Bookings) > 0 {
			commit, err := uc.bookings.CommitDay(ctx, repository.CommitDayOptions{
				Delete: bookingIDs(day.Conflicts),
				Insert: result.Bookings,
			})
			if err != nil {
				uc.l.Errorf(ctx, "scheduler.Run CommitDay %s: %v", w.Date.Format("2006-01-02"), err)
				return scheduler.RunOutput{}, fmt.Errorf("%w: %s: %v", scheduler.ErrCommit, w.Date.Format("2006-01-02"), err)
			}
			day.Created = commit.Inserted
			day.Duplicates = commit.Duplicates
			uc.mirror(ctx, day.Created, day.Conflicts)
		}

		for _, b := range result.Bookings {
			tb.credit(b.TaskID, b.DurationSeconds)
		}
		day.Unscheduled = result.Unscheduled
		out.TotalBookings += len(day.Created)
		out.Days = append(out.Days, day)

		uc.l.Infof(ctx, "scheduler.Run: %s kept=%d conflicts=%d created=%d duplicates=%d",
			w.Date.Format("2006-01-02"), len(day.Kept), len(day.Conflicts), len(day.Created), day.Duplicates)

		if len(tb.open(windows[len(windows)-1].End)) == 0 && !hasConflictsAfter(cls, i) {
			uc.l.Infof(ctx, "scheduler.Run: all tasks scheduled by %s", w.Date.Format("2006-01-02"))
			out.Days = append(out.Days, keptAfter(cls, windows, i)...)
			break
		}
	}

	out.Remaining = tb.remaining()
	out.FinishedAt = uc.now().In(opt.Location)
	uc.remember(out)
	return out, nil
}

// freeze locks planned bookings that have already ended and credits them.
func (uc *implUseCase) freeze(ctx context.Context, past []model.Booking, tb *taskBook) ([]model.Booking, error) {
	if len(past) == 0 {
		return nil, nil
	}
	frozen, err := uc.bookings.FreezeBookings(ctx, bookingIDs(past))
	if err != nil {
		uc.l.Errorf(ctx, "scheduler.Run FreezeBookings: %v", err)
		return nil, fmt.Errorf("%w: freeze: %v", scheduler.ErrCommit, err)
	}
	for _, b := range frozen {
		tb.credit(b.TaskID, b.DurationSeconds)
	}
	uc.l.Infof(ctx, "scheduler.Run: locked %d past bookings", len(frozen))
	return frozen, nil
}

// mirror publishes created bookings and removes purged ones from the
// external calendar. Failures are logged and never fail the run.
func (uc *implUseCase) mirror(ctx context.Context, created, purged []model.Booking) {
	if uc.publisher == nil {
		return
	}
	for _, b := range purged {
		if b.ExternalID == "" {
			continue
		}
		if err := uc.publisher.Unpublish(ctx, b); err != nil {
			uc.l.Warnf(ctx, "scheduler.Run: failed to remove calendar event %s: %v", b.ExternalID, err)
		}
	}
	for i, b := range created {
		externalID, err := uc.publisher.Publish(ctx, b)
		if err != nil {
			uc.l.Warnf(ctx, "scheduler.Run: failed to publish booking %s: %v", b.ID, err)
			continue
		}
		if err := uc.bookings.SetExternalID(ctx, b.ID, externalID); err != nil {
			uc.l.Warnf(ctx, "scheduler.Run: failed to store calendar event id for %s: %v", b.ID, err)
			continue
		}
		created[i].ExternalID = externalID
	}
}

// ceilMinute keeps bookings on whole minutes.
func ceilMinute(t time.Time) time.Time {
	if r := t.Truncate(time.Minute); r.Before(t) {
		return r.Add(time.Minute)
	}
	return t
}

// keptAfter reports the days after day that still hold kept bookings.
func keptAfter(cls classification, windows []engine.DayWindow, day int) []scheduler.DayReport {
	var out []scheduler.DayReport
	for d := day + 1; d < len(windows); d++ {
		if len(cls.kept[d]) == 0 {
			continue
		}
		w := windows[d]
		out = append(out, scheduler.DayReport{
			Index:       w.Index,
			Date:        w.Date,
			WindowStart: w.Start,
			WindowEnd:   w.End,
			Kept:        cls.kept[d],
		})
	}
	return out
}

func hasConflictsAfter(cls classification, day int) bool {
	for d, c := range cls.conflicts {
		if d > day && len(c) > 0 {
			return true
		}
	}
	return false
}

// LastRun returns the most recent completed report.
func (uc *implUseCase) LastRun(ctx context.Context) (scheduler.RunOutput, error) {
	uc.lastMu.RLock()
	defer uc.lastMu.RUnlock()
	if uc.last == nil {
		return scheduler.RunOutput{}, scheduler.ErrNoRunYet
	}
	return *uc.last, nil
}

func (uc *implUseCase) remember(out scheduler.RunOutput) {
	uc.lastMu.Lock()
	defer uc.lastMu.Unlock()
	uc.last = &out
}

package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/engine"
	"task-scheduler/internal/scheduler/repository"
	"task-scheduler/pkg/interval"
)

// snapshot is everything a run reads before it writes anything.
type snapshot struct {
	tasks   []model.Task
	planned []model.Booking
	locked  []model.Booking
	busy    []model.BusyInterval
}

func (uc *implUseCase) readSnapshot(ctx context.Context, windows []engine.DayWindow, now time.Time) (snapshot, error) {
	var snap snapshot
	var err error

	snap.tasks, err = uc.tasks.ListOpenTasks(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: tasks: %v", scheduler.ErrSourceFetch, err)
	}

	snap.planned, err = uc.bookings.ListBookings(ctx, repository.ListBookingsOptions{Status: model.BookingPlanned})
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: planned bookings: %v", scheduler.ErrSourceFetch, err)
	}

	// Busy time is read for the whole horizon plus any planned booking that
	// is still running or lies beyond it, so every booking can be checked.
	from, to := windows[0].Start, windows[len(windows)-1].End
	for _, b := range snap.planned {
		if !b.End.After(now) {
			continue
		}
		if b.Start.Before(from) {
			from = b.Start
		}
		if b.End.After(to) {
			to = b.End
		}
	}

	snap.locked, err = uc.bookings.ListBookings(ctx, repository.ListBookingsOptions{
		Status: model.BookingLocked,
		From:   from,
		To:     to,
	})
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: locked bookings: %v", scheduler.ErrSourceFetch, err)
	}

	snap.busy, err = uc.busy.ListBusy(ctx, repository.ListBusyOptions{From: from, To: to})
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: busy intervals: %v", scheduler.ErrSourceFetch, err)
	}

	return snap, nil
}

// taskBook is the in-memory progress of every open task during a run.
type taskBook struct {
	order []string
	byID  map[string]*model.Task
}

func newTaskBook(tasks []model.Task) *taskBook {
	tb := &taskBook{byID: make(map[string]*model.Task, len(tasks))}
	for _, t := range tasks {
		if _, ok := tb.byID[t.ID]; ok {
			continue
		}
		tb.order = append(tb.order, t.ID)
		tb.byID[t.ID] = &t
	}
	return tb
}

func (tb *taskBook) credit(taskID string, seconds int64) {
	if t, ok := tb.byID[taskID]; ok {
		t.CompletedSeconds += seconds
	}
}

// open lists tasks with time left whose floor lies before until.
func (tb *taskBook) open(until time.Time) []model.Task {
	var out []model.Task
	for _, id := range tb.order {
		t := tb.byID[id]
		if t.RemainingSeconds() <= 0 {
			continue
		}
		if !t.ScheduleNotBefore.IsZero() && !t.ScheduleNotBefore.Before(until) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

func (tb *taskBook) remaining() []model.UnscheduledRecord {
	var out []model.UnscheduledRecord
	for _, id := range tb.order {
		t := tb.byID[id]
		if r := t.RemainingSeconds(); r > 0 {
			out = append(out, model.UnscheduledRecord{Task: *t, RemainingSeconds: r})
		}
	}
	return out
}

// classification splits future planned bookings by the day they start on.
type classification struct {
	kept      map[int][]model.Booking
	conflicts map[int][]model.Booking
	keptAll   []model.Booking
}

// classify decides once, for every future planned booking, whether it still
// stands. A booking is a conflict when it overlaps a meeting or a locked
// booking, when its task is gone, or when its task is already satisfied.
// Kept bookings are credited to their task.
func classify(future []model.Booking, blockers []interval.Interval, tb *taskBook, windows []engine.DayWindow) classification {
	c := classification{
		kept:      map[int][]model.Booking{},
		conflicts: map[int][]model.Booking{},
	}

	future = slices.Clone(future)
	slices.SortStableFunc(future, func(a, b model.Booking) int {
		return a.Start.Compare(b.Start)
	})

	for _, b := range future {
		day := dayOf(b, windows)
		t, ok := tb.byID[b.TaskID]
		if !ok || t.RemainingSeconds() <= 0 || interval.OverlapsAny(b.Interval(), blockers) {
			c.conflicts[day] = append(c.conflicts[day], b)
			continue
		}
		c.kept[day] = append(c.kept[day], b)
		c.keptAll = append(c.keptAll, b)
		tb.credit(b.TaskID, b.DurationSeconds)
	}
	return c
}

// dayOf returns the position of the window on whose date b starts, or 0.
func dayOf(b model.Booking, windows []engine.DayWindow) int {
	for i, w := range windows {
		start := b.Start.In(w.Date.Location())
		if start.Year() == w.Date.Year() && start.YearDay() == w.Date.YearDay() {
			return i
		}
	}
	return 0
}

func bookingIDs(bookings []model.Booking) []string {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

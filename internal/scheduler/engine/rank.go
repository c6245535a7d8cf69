package engine

import (
	"cmp"
	"slices"
	"time"

	"task-scheduler/internal/model"
)

// RankMode selects the primary ordering key.
type RankMode string

const (
	// RankOrdinal orders by priority ordinal, most urgent first.
	RankOrdinal RankMode = "ordinal"
	// RankUrgency orders by priority weight plus due-date urgency, highest first.
	RankUrgency RankMode = "urgency"
)

// DefaultUrgencyWindow is the look-ahead in which a due date adds urgency.
const DefaultUrgencyWindow = 7 * 24 * time.Hour

// RankOptions configures Rank.
type RankOptions struct {
	Mode          RankMode
	Now           time.Time
	UrgencyWindow time.Duration
}

// UrgencyScore is Priority.Weight plus 10 points per hour the due date lies
// inside the urgency window. Tasks without a due date get no urgency.
func UrgencyScore(t model.Task, now time.Time, window time.Duration) int64 {
	score := t.Priority.Weight()
	if t.DueDate.IsZero() {
		return score
	}
	if window <= 0 {
		window = DefaultUrgencyWindow
	}

	until := t.DueDate.Sub(now)
	hoursUntil := int64(0)
	if until > 0 {
		hoursUntil = int64((until + time.Hour - 1) / time.Hour)
	}
	windowHours := int64(window / time.Hour)
	return score + max(0, windowHours-hoursUntil)*10
}

// Rank drops tasks with nothing remaining and orders the rest: primary key
// by mode, then longer remaining first, then name, then id.
func Rank(tasks []model.Task, opt RankOptions) []model.Task {
	ranked := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.RemainingSeconds() > 0 {
			ranked = append(ranked, t)
		}
	}

	primary := func(a, b model.Task) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	}
	if opt.Mode == RankUrgency {
		primary = func(a, b model.Task) int {
			return cmp.Compare(UrgencyScore(b, opt.Now, opt.UrgencyWindow), UrgencyScore(a, opt.Now, opt.UrgencyWindow))
		}
	}

	slices.SortStableFunc(ranked, func(a, b model.Task) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		if c := cmp.Compare(b.RemainingSeconds(), a.RemainingSeconds()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ranked
}

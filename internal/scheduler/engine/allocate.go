package engine

import (
	"time"

	"task-scheduler/internal/model"
)

// DefaultStepSeconds is the decrement used when a chunk does not fit.
const DefaultStepSeconds = 300

// AllocateOptions is the chunking and break policy of one allocation pass.
type AllocateOptions struct {
	Break           time.Duration
	DefaultMinChunk int64
	DefaultMaxChunk int64
	StepSeconds     int64
}

// ChunkBounds resolves the effective min and max chunk for t.
func (o AllocateOptions) ChunkBounds(t model.Task) (minChunk, maxChunk int64) {
	minChunk = t.MinChunkSeconds
	if minChunk <= 0 {
		minChunk = o.DefaultMinChunk
	}
	minChunk = max(1, minChunk)

	maxChunk = t.MaxChunkSeconds
	if maxChunk <= 0 {
		maxChunk = o.DefaultMaxChunk
	}
	return minChunk, max(minChunk, maxChunk)
}

// slotCursor is a free slot plus the next start available in it. The cursor
// only moves forward and never passes the slot end.
type slotCursor struct {
	slot   FreeSlot
	index  int
	cursor time.Time
}

type allocator struct {
	opt   AllocateOptions
	slots []slotCursor
}

// Allocate places the ranked tasks into slots, one task at a time. Each task
// is fully placed or recorded as unscheduled before the next is considered.
// Bookings never overlap each other and consecutive bookings in one slot are
// at least opt.Break apart.
func Allocate(ranked []model.Task, slots []FreeSlot, opt AllocateOptions) model.ScheduleResult {
	if opt.StepSeconds <= 0 {
		opt.StepSeconds = DefaultStepSeconds
	}
	a := &allocator{opt: opt, slots: make([]slotCursor, 0, len(slots))}
	for i, s := range slots {
		if !s.End.After(s.Start) {
			continue
		}
		a.slots = append(a.slots, slotCursor{slot: s, index: i, cursor: s.Start})
	}

	var result model.ScheduleResult
	for _, t := range ranked {
		placed, remaining := a.allocateTask(t)
		result.Bookings = append(result.Bookings, placed...)
		if remaining > 0 {
			snapshot := t
			for _, b := range placed {
				snapshot.CompletedSeconds += b.DurationSeconds
			}
			result.Unscheduled = append(result.Unscheduled, model.UnscheduledRecord{
				Task:             snapshot,
				RemainingSeconds: remaining,
			})
		}
	}
	return result
}

func (a *allocator) allocateTask(t model.Task) ([]model.Booking, int64) {
	remaining := t.RemainingSeconds()
	minChunk, maxChunk := a.opt.ChunkBounds(t)
	notBefore := t.ScheduleNotBefore

	var placed []model.Booking
	for remaining > 0 {
		booking, ok := a.placeAny(t, candidateSizes(remaining, minChunk, maxChunk, a.opt.StepSeconds), notBefore)
		if !ok {
			break
		}
		placed = append(placed, booking)
		remaining -= booking.DurationSeconds
		notBefore = booking.End.Add(a.opt.Break)
	}
	return placed, remaining
}

// candidateSizes lists chunk sizes to try, largest first. When remaining is
// below minChunk the whole remainder is the only candidate (the short tail).
func candidateSizes(remaining, minChunk, maxChunk, step int64) []int64 {
	if remaining < minChunk {
		return []int64{remaining}
	}
	desired := max(minChunk, min(remaining, maxChunk))
	sizes := []int64{desired}
	for s := desired - step; s > minChunk; s -= step {
		sizes = append(sizes, s)
	}
	if desired > minChunk {
		sizes = append(sizes, minChunk)
	}
	return sizes
}

func (a *allocator) placeAny(t model.Task, sizes []int64, notBefore time.Time) (model.Booking, bool) {
	for _, size := range sizes {
		if b, ok := a.place(t, size, notBefore); ok {
			return b, true
		}
	}
	return model.Booking{}, false
}

// place puts seconds into the first slot, in slot order, with room for it.
func (a *allocator) place(t model.Task, seconds int64, notBefore time.Time) (model.Booking, bool) {
	need := time.Duration(seconds) * time.Second
	for i := range a.slots {
		start := a.slots[i].cursor
		if notBefore.After(start) {
			start = notBefore
		}
		if a.slots[i].slot.End.Sub(start) < need {
			continue
		}

		booking := model.NewBooking(t, start, seconds, a.slots[i].index)
		next := booking.End.Add(a.opt.Break)
		if next.After(a.slots[i].slot.End) {
			next = a.slots[i].slot.End
		}
		a.slots[i].cursor = next
		return booking, true
	}
	return model.Booking{}, false
}

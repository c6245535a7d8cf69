package engine

import (
	"fmt"
	"time"

	"task-scheduler/pkg/interval"
)

// FreeSlot is a contiguous span with no busy time in it.
type FreeSlot struct {
	Start    time.Time
	End      time.Time
	DayIndex int
}

// Seconds is the slot length.
func (s FreeSlot) Seconds() int64 {
	return interval.New(s.Start, s.End).Seconds()
}

// BuildFreeSlots returns the free spans of [windowStart, windowEnd) around
// busy. The break is charged after every merged busy block, never before it.
func BuildFreeSlots(windowStart, windowEnd time.Time, busy []interval.Interval, brk time.Duration, dayIndex int) ([]FreeSlot, error) {
	if !windowEnd.After(windowStart) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	}

	var slots []FreeSlot
	emit := func(start, end time.Time) {
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.After(start) {
			slots = append(slots, FreeSlot{Start: start, End: end, DayIndex: dayIndex})
		}
	}

	cursor := windowStart
	for _, block := range interval.Merge(busy) {
		blockEnd := block.End.Add(brk)
		if !blockEnd.After(cursor) {
			continue
		}
		if !block.Start.Before(windowEnd) {
			break
		}
		if block.Start.After(cursor) {
			emit(cursor, block.Start)
		}
		cursor = blockEnd
		if !cursor.Before(windowEnd) {
			break
		}
	}
	if cursor.Before(windowEnd) {
		emit(cursor, windowEnd)
	}
	return slots, nil
}

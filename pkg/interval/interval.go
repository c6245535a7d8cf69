// Package interval implements the half-open time interval algebra used to
// build busy and free time: merging, clipping and strict overlap.
package interval

import (
	"slices"
	"time"
)

// Interval is the half-open span [Start, End). It is only meaningful when
// End is strictly after Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New returns the interval [start, end).
func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether the interval has positive length.
func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

// Duration is End-Start, or 0 for an invalid interval.
func (i Interval) Duration() time.Duration {
	if !i.Valid() {
		return 0
	}
	return i.End.Sub(i.Start)
}

// Seconds is the whole-second length of the interval.
func (i Interval) Seconds() int64 {
	return int64(i.Duration() / time.Second)
}

// Merge sorts intervals by start and folds overlapping or touching ones into
// the minimal covering set. Zero and negative length intervals are dropped.
// The input slice is not modified.
func Merge(in []Interval) []Interval {
	valid := make([]Interval, 0, len(in))
	for _, iv := range in {
		if iv.Valid() {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	slices.SortStableFunc(valid, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})

	merged := []Interval{valid[0]}
	for _, cur := range valid[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// Clip intersects iv with [windowStart, windowEnd). ok is false when the
// intersection is empty.
func Clip(iv Interval, windowStart, windowEnd time.Time) (Interval, bool) {
	start := iv.Start
	if windowStart.After(start) {
		start = windowStart
	}
	end := iv.End
	if windowEnd.Before(end) {
		end = windowEnd
	}
	out := Interval{Start: start, End: end}
	if !out.Valid() {
		return Interval{}, false
	}
	return out, true
}

// ClipAll clips every interval to the window and drops the empty results.
func ClipAll(in []Interval, windowStart, windowEnd time.Time) []Interval {
	out := make([]Interval, 0, len(in))
	for _, iv := range in {
		if c, ok := Clip(iv, windowStart, windowEnd); ok {
			out = append(out, c)
		}
	}
	return out
}

// Overlaps is the strict overlap test. Intervals that only touch do not
// overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// OverlapsAny reports whether iv strictly overlaps any interval in set.
func OverlapsAny(iv Interval, set []Interval) bool {
	for _, other := range set {
		if Overlaps(iv, other) {
			return true
		}
	}
	return false
}

package engine_test

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"task-scheduler/internal/scheduler/engine"
	"task-scheduler/pkg/interval"
)

func TestBuildFreeSlots(t *testing.T) {
	tests := []struct {
		name string
		busy []interval.Interval
		brk  time.Duration
		want []interval.Interval
	}{
		{
			name: "No busy time",
			want: []interval.Interval{span(8, 0, 17, 0)},
		},
		{
			name: "Break charged after meeting",
			busy: []interval.Interval{span(10, 0, 11, 0)},
			brk:  15 * time.Minute,
			want: []interval.Interval{span(8, 0, 10, 0), span(11, 15, 17, 0)},
		},
		{
			name: "Meeting at window start",
			busy: []interval.Interval{span(8, 0, 9, 0)},
			brk:  15 * time.Minute,
			want: []interval.Interval{span(9, 15, 17, 0)},
		},
		{
			name: "Meeting before window still pushes break into it",
			busy: []interval.Interval{span(7, 30, 7, 55)},
			brk:  15 * time.Minute,
			want: []interval.Interval{span(8, 10, 17, 0)},
		},
		{
			name: "Break swallows gap between meetings",
			busy: []interval.Interval{span(10, 0, 11, 0), span(11, 10, 12, 0)},
			brk:  15 * time.Minute,
			want: []interval.Interval{span(8, 0, 10, 0), span(12, 15, 17, 0)},
		},
		{
			name: "Meeting crossing window end",
			busy: []interval.Interval{span(16, 0, 18, 0)},
			want: []interval.Interval{span(8, 0, 16, 0)},
		},
		{
			name: "Break runs past window end",
			busy: []interval.Interval{span(16, 0, 16, 50)},
			brk:  15 * time.Minute,
			want: []interval.Interval{span(8, 0, 16, 0)},
		},
		{
			name: "Meeting after window ignored",
			busy: []interval.Interval{span(18, 0, 19, 0)},
			want: []interval.Interval{span(8, 0, 17, 0)},
		},
		{
			name: "Whole day busy",
			busy: []interval.Interval{span(7, 0, 18, 0)},
			want: nil,
		},
		{
			name: "Unsorted overlapping busy",
			busy: []interval.Interval{span(13, 0, 14, 0), span(9, 0, 10, 0), span(9, 30, 10, 30)},
			want: []interval.Interval{span(8, 0, 9, 0), span(10, 30, 13, 0), span(14, 0, 17, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.BuildFreeSlots(at(8, 0), at(17, 0), tt.busy, tt.brk, 3)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d slots %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("slot %d = [%s, %s), want [%s, %s)", i,
						got[i].Start.Format("15:04"), got[i].End.Format("15:04"),
						tt.want[i].Start.Format("15:04"), tt.want[i].End.Format("15:04"))
				}
				if got[i].DayIndex != 3 {
					t.Errorf("slot %d DayIndex = %d, want 3", i, got[i].DayIndex)
				}
			}
		})
	}
}

func TestBuildFreeSlotsInvalidWindow(t *testing.T) {
	_, err := engine.BuildFreeSlots(at(17, 0), at(8, 0), nil, 0, 0)
	if !errors.Is(err, engine.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
	_, err = engine.BuildFreeSlots(at(8, 0), at(8, 0), nil, 0, 0)
	if !errors.Is(err, engine.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for empty window, got %v", err)
	}
}

// Without break padding, free slots and merged busy time tile the window.
func TestFreeSlotsComplement(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	windowStart, windowEnd := at(8, 0), at(17, 0)

	for round := 0; round < 200; round++ {
		var busy []interval.Interval
		for n := rng.IntN(6); n > 0; n-- {
			start := at(6, 0).Add(time.Duration(rng.IntN(13*60)) * time.Minute)
			busy = append(busy, interval.New(start, start.Add(time.Duration(1+rng.IntN(180))*time.Minute)))
		}

		slots, err := engine.BuildFreeSlots(windowStart, windowEnd, busy, 0, 0)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}

		var pieces []interval.Interval
		for i, s := range slots {
			if !s.End.After(s.Start) {
				t.Fatalf("round %d: empty slot emitted", round)
			}
			if i > 0 && s.Start.Before(slots[i-1].End) {
				t.Fatalf("round %d: free slots overlap", round)
			}
			for _, b := range busy {
				if interval.Overlaps(interval.New(s.Start, s.End), b) {
					t.Fatalf("round %d: slot overlaps busy time", round)
				}
			}
			pieces = append(pieces, interval.New(s.Start, s.End))
		}
		pieces = append(pieces, interval.ClipAll(busy, windowStart, windowEnd)...)

		cover := interval.Merge(pieces)
		if len(cover) != 1 || !cover[0].Start.Equal(windowStart) || !cover[0].End.Equal(windowEnd) {
			t.Fatalf("round %d: slots and busy do not cover the window: %v", round, cover)
		}
	}
}

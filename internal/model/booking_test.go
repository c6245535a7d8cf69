package model_test

import (
	"testing"
	"time"

	"task-scheduler/internal/model"
)

func TestBookingsBusy(t *testing.T) {
	start := time.Date(2025, 9, 29, 8, 0, 0, 0, time.UTC)
	tk := model.Task{ID: "t1", Name: "Report"}

	planned := model.NewBooking(tk, start, 3600, 0)
	locked := model.NewBooking(tk, start.Add(2*time.Hour), 1800, 1)
	locked.Status = model.BookingLocked

	tests := []struct {
		name string
		in   model.Booking
		want model.BusyKind
	}{
		{"Planned booking", planned, model.BusyPlannedBooking},
		{"Locked booking", locked, model.BusyLockedBooking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.BookingsBusy([]model.Booking{tt.in})
			if len(got) != 1 {
				t.Fatalf("expected one interval, got %d", len(got))
			}
			b := got[0]
			if b.Kind != tt.want || b.Source != model.BookingSource || b.Summary != "[Task] Report" {
				t.Errorf("unexpected busy interval: %+v", b)
			}
			if !b.Start.Equal(tt.in.Start) || !b.End.Equal(tt.in.End) {
				t.Errorf("span changed: got [%s, %s), want [%s, %s)", b.Start, b.End, tt.in.Start, tt.in.End)
			}
		})
	}
}

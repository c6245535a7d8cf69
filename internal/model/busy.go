package model

import (
	"time"

	"task-scheduler/pkg/interval"
)

// BusyKind tags where a busy interval came from.
type BusyKind string

const (
	BusyExternalMeeting BusyKind = "external-meeting"
	BusyLockedBooking   BusyKind = "locked-booking"
	BusyPlannedBooking  BusyKind = "planned-booking"
)

// BusyInterval is committed time. The kind only matters until it is merged.
type BusyInterval struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Kind    BusyKind  `json:"kind"`
	Source  string    `json:"source"` // e.g. "gcal", "meetings"
	Summary string    `json:"summary,omitempty"`
}

// Interval drops the tag.
func (b BusyInterval) Interval() interval.Interval {
	return interval.New(b.Start, b.End)
}

// Intervals strips tags from a list of busy intervals.
func Intervals(busy []BusyInterval) []interval.Interval {
	out := make([]interval.Interval, 0, len(busy))
	for _, b := range busy {
		out = append(out, b.Interval())
	}
	return out
}

// BookingsBusy tags bookings as busy time by their status.
func BookingsBusy(bookings []Booking) []BusyInterval {
	out := make([]BusyInterval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Busy())
	}
	return out
}

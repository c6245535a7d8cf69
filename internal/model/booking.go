package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-scheduler/pkg/interval"
)

// BookingStatus is the persisted lifecycle state of a booking.
type BookingStatus string

const (
	// BookingPlanned is a generated booking that later runs may move.
	BookingPlanned BookingStatus = "planned"
	// BookingLocked is immovable: it is in the past or was pinned by the user.
	BookingLocked BookingStatus = "locked"
)

// BookingTitlePrefix marks calendar entries created by the scheduler.
const BookingTitlePrefix = "[Task] "

// BookingSource marks busy time that comes from our own bookings.
const BookingSource = "bookings"

var bookingNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8") // URL namespace

// Booking is one chunk of a task placed on the calendar.
type Booking struct {
	ID              string        `json:"id"`
	TaskID          string        `json:"task_id"`
	Title           string        `json:"title"`
	Priority        Priority      `json:"priority"`
	Start           time.Time     `json:"start"`
	End             time.Time     `json:"end"`
	DurationSeconds int64         `json:"duration_seconds"`
	SlotIndex       int           `json:"slot_index"`
	Status          BookingStatus `json:"status"`
	ExternalID      string        `json:"external_id,omitempty"` // calendar event id once published
}

// NewBooking builds a planned booking of seconds starting at start. The id
// is derived from task, start and end so identical bookings collide.
func NewBooking(task Task, start time.Time, seconds int64, slotIndex int) Booking {
	end := start.Add(time.Duration(seconds) * time.Second)
	return Booking{
		ID:              BookingID(task.ID, start, end),
		TaskID:          task.ID,
		Title:           BookingTitlePrefix + task.Name,
		Priority:        task.Priority,
		Start:           start,
		End:             end,
		DurationSeconds: seconds,
		SlotIndex:       slotIndex,
		Status:          BookingPlanned,
	}
}

// BookingID is the deterministic identity of (task, start, end).
func BookingID(taskID string, start, end time.Time) string {
	key := fmt.Sprintf("%s|%d|%d", taskID, start.Unix(), end.Unix())
	return uuid.NewSHA1(bookingNamespace, []byte(key)).String()
}

// Interval returns the booking span.
func (b Booking) Interval() interval.Interval {
	return interval.New(b.Start, b.End)
}

// Busy is the booking as committed time. Locked bookings are fixed history,
// anything else is a planned booking.
func (b Booking) Busy() BusyInterval {
	kind := BusyPlannedBooking
	if b.Status == BookingLocked {
		kind = BusyLockedBooking
	}
	return BusyInterval{Start: b.Start, End: b.End, Kind: kind, Source: BookingSource, Summary: b.Title}
}

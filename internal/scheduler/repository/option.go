package repository

import (
	"time"

	"task-scheduler/internal/model"
)

// ListBookingsOptions filters bookings. Zero fields are not applied; From and
// To select bookings overlapping [From, To).
type ListBookingsOptions struct {
	Status model.BookingStatus
	From   time.Time
	To     time.Time
}

// CommitDayOptions is the write set of one day's cycle.
type CommitDayOptions struct {
	Delete []string
	Insert []model.Booking
}

// CommitDayResult reports what CommitDay actually wrote.
type CommitDayResult struct {
	Inserted   []model.Booking
	Deleted    int
	Duplicates int
}

// ListBusyOptions selects busy time overlapping [From, To).
type ListBusyOptions struct {
	From time.Time
	To   time.Time
}

package repository

import (
	"context"

	"task-scheduler/internal/model"
)

// TaskRepository reads the tasks a run schedules.
type TaskRepository interface {
	ListOpenTasks(ctx context.Context) ([]model.Task, error)
}

// BookingRepository is the store of generated bookings.
type BookingRepository interface {
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)
	// FreezeBookings locks the given planned bookings and credits their
	// duration to the owning tasks in one transaction.
	FreezeBookings(ctx context.Context, ids []string) ([]model.Booking, error)
	// CommitDay deletes and inserts one day's bookings atomically. Inserts
	// whose id already exists are counted as duplicates and skipped.
	CommitDay(ctx context.Context, opt CommitDayOptions) (CommitDayResult, error)
	SetExternalID(ctx context.Context, id, externalID string) error
}

// BusySource yields committed time that bookings must avoid.
type BusySource interface {
	ListBusy(ctx context.Context, opt ListBusyOptions) ([]model.BusyInterval, error)
}

// MeetingRepository stores manually entered meetings.
type MeetingRepository interface {
	BusySource
	UpsertMeetings(ctx context.Context, meetings []model.BusyInterval) (int, error)
}

// Publisher mirrors bookings to an external calendar.
type Publisher interface {
	Publish(ctx context.Context, b model.Booking) (string, error)
	Unpublish(ctx context.Context, b model.Booking) error
}

// Store is the composed interface of the local database.
type Store interface {
	BookingRepository
	MeetingRepository
}

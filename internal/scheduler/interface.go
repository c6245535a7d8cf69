package scheduler

import (
	"context"

	"task-scheduler/internal/model"
)

// UseCase defines the scheduling entry points.
type UseCase interface {
	// Run reconciles previously planned bookings with the current calendar
	// and fills the horizon with new bookings. At most one run is active.
	Run(ctx context.Context, input RunInput) (RunOutput, error)

	// LastRun returns the report of the most recent successful run.
	LastRun(ctx context.Context) (RunOutput, error)

	// Bookings lists stored bookings overlapping a range.
	Bookings(ctx context.Context, input BookingsInput) ([]model.Booking, error)

	// AddMeetings stores manually entered meetings as busy time. Meetings
	// already stored are skipped; the count of new ones is returned.
	AddMeetings(ctx context.Context, meetings []model.BusyInterval) (int, error)
}

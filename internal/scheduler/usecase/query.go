package usecase

import (
	"context"
	"fmt"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/repository"
)

// Bookings lists stored bookings overlapping the input range.
func (uc *implUseCase) Bookings(ctx context.Context, input scheduler.BookingsInput) ([]model.Booking, error) {
	switch input.Status {
	case "", model.BookingPlanned, model.BookingLocked:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", scheduler.ErrInvalidBookingFilter, input.Status)
	}
	if !input.From.IsZero() && !input.To.IsZero() && !input.To.After(input.From) {
		return nil, fmt.Errorf("%w: range end must be after start", scheduler.ErrInvalidBookingFilter)
	}

	bookings, err := uc.bookings.ListBookings(ctx, repository.ListBookingsOptions{
		Status: input.Status,
		From:   input.From,
		To:     input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "scheduler.Bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", scheduler.ErrSourceFetch, err)
	}
	return bookings, nil
}

// AddMeetings validates and stores manual meetings.
func (uc *implUseCase) AddMeetings(ctx context.Context, meetings []model.BusyInterval) (int, error) {
	if uc.meetings == nil {
		return 0, scheduler.ErrMeetingsUnavailable
	}
	for i, m := range meetings {
		if !m.End.After(m.Start) {
			return 0, fmt.Errorf("%w: meeting %d", scheduler.ErrInvalidMeeting, i)
		}
	}
	if len(meetings) == 0 {
		return 0, nil
	}

	n, err := uc.meetings.UpsertMeetings(ctx, meetings)
	if err != nil {
		uc.l.Errorf(ctx, "scheduler.AddMeetings: %v", err)
		return 0, fmt.Errorf("failed to store meetings: %w", err)
	}
	uc.l.Infof(ctx, "scheduler.AddMeetings: stored %d of %d meetings", n, len(meetings))
	return n, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/usecase"
)

func TestBookings(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(reportTask())
	uc := usecase.New(&mockLogger{}, store, store, &mockBusy{}, testOptions(), usecase.WithClock(clock(at(7, 0))))
	if _, err := uc.Run(ctx, scheduler.RunInput{}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   scheduler.BookingsInput
		want    int
		wantErr error
	}{
		{name: "All", input: scheduler.BookingsInput{}, want: 2},
		{name: "Range", input: scheduler.BookingsInput{From: at(9, 0), To: at(12, 0)}, want: 1},
		{name: "Locked only", input: scheduler.BookingsInput{Status: model.BookingLocked}, want: 0},
		{name: "Unknown status", input: scheduler.BookingsInput{Status: "done"}, wantErr: scheduler.ErrInvalidBookingFilter},
		{name: "Inverted range", input: scheduler.BookingsInput{From: at(12, 0), To: at(9, 0)}, wantErr: scheduler.ErrInvalidBookingFilter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Bookings(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d bookings, want %d", len(got), tt.want)
			}
		})
	}

	store.listErr = errors.New("disk I/O error")
	if _, err := uc.Bookings(ctx, scheduler.BookingsInput{}); !errors.Is(err, scheduler.ErrSourceFetch) {
		t.Errorf("expected ErrSourceFetch, got %v", err)
	}
}

func TestAddMeetings(t *testing.T) {
	ctx := context.Background()

	t.Run("Not configured", func(t *testing.T) {
		store := newMemStore()
		uc := usecase.New(&mockLogger{}, store, store, &mockBusy{}, testOptions())
		if _, err := uc.AddMeetings(ctx, nil); !errors.Is(err, scheduler.ErrMeetingsUnavailable) {
			t.Fatalf("expected ErrMeetingsUnavailable, got %v", err)
		}
	})

	t.Run("Invalid meeting stores nothing", func(t *testing.T) {
		store := newMemStore()
		meetings := &mockMeetings{}
		uc := usecase.New(&mockLogger{}, store, store, meetings, testOptions(), usecase.WithMeetings(meetings))
		_, err := uc.AddMeetings(ctx, []model.BusyInterval{
			{Start: at(9, 0), End: at(10, 0)},
			{Start: at(11, 0), End: at(11, 0)},
		})
		if !errors.Is(err, scheduler.ErrInvalidMeeting) {
			t.Fatalf("expected ErrInvalidMeeting, got %v", err)
		}
		if len(meetings.stored) != 0 {
			t.Errorf("expected nothing stored, got %d", len(meetings.stored))
		}
	})

	t.Run("Stored meetings block the next run", func(t *testing.T) {
		store := newMemStore(reportTask())
		meetings := &mockMeetings{}
		uc := usecase.New(&mockLogger{}, store, store, meetings, testOptions(),
			usecase.WithClock(clock(at(7, 0))), usecase.WithMeetings(meetings))

		n, err := uc.AddMeetings(ctx, []model.BusyInterval{{Start: at(8, 0), End: at(12, 0), Summary: "Workshop"}})
		if err != nil || n != 1 {
			t.Fatalf("AddMeetings = %d, %v", n, err)
		}
		out, err := uc.Run(ctx, scheduler.RunInput{})
		if err != nil {
			t.Fatal(err)
		}
		assertSpans(t, out.Days[0].Created, [2]time.Time{at(12, 15), at(13, 15)}, [2]time.Time{at(13, 30), at(14, 0)})
	})
}

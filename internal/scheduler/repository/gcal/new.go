package gcal

import (
	"context"
	"time"

	"task-scheduler/pkg/gcalendar"
	"task-scheduler/pkg/log"
)

// Source tags busy intervals read from Google Calendar.
const Source = "gcal"

// Private extended properties set on events this service creates.
const (
	PropBookingID = "task_scheduler_booking_id"
	PropTaskID    = "task_scheduler_task_id"
)

// Calendar is the subset of the calendar client used here.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Options selects the calendar and how its events are read.
type Options struct {
	CalendarID    string
	Location      *time.Location
	IncludeAllDay bool // all-day events block the whole day when set
}

type implRepository struct {
	cal Calendar
	opt Options
	l   log.Logger
}

// New creates a Google Calendar backed busy source and booking publisher.
func New(cal Calendar, opt Options, l log.Logger) *implRepository {
	if opt.Location == nil {
		opt.Location = time.UTC
	}
	return &implRepository{cal: cal, opt: opt, l: l}
}

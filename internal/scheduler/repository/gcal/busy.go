package gcal

import (
	"context"
	"fmt"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/scheduler/repository"
	"task-scheduler/pkg/gcalendar"
)

// ListBusy returns the calendar's meetings overlapping [From, To). Events
// created for bookings, cancelled events and events marked free are skipped.
func (r *implRepository) ListBusy(ctx context.Context, opt repo.ListBusyOptions) ([]model.BusyInterval, error) {
	events, err := r.cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.opt.CalendarID,
		TimeMin:    opt.From,
		TimeMax:    opt.To,
		Location:   r.opt.Location,
	})
	if err != nil {
		r.l.Errorf(ctx, "scheduler/repository/gcal.ListBusy: %v", err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	busy := make([]model.BusyInterval, 0, len(events))
	for _, ev := range events {
		if ev.Cancelled || ev.Transparent || ev.Private[PropBookingID] != "" {
			continue
		}
		if ev.AllDay && !r.opt.IncludeAllDay {
			continue
		}
		if !ev.EndTime.After(ev.StartTime) {
			continue
		}
		busy = append(busy, model.BusyInterval{
			Start:   ev.StartTime,
			End:     ev.EndTime,
			Kind:    model.BusyExternalMeeting,
			Source:  Source,
			Summary: ev.Summary,
		})
	}
	return busy, nil
}

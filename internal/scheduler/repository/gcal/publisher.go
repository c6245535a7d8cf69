package gcal

import (
	"context"
	"fmt"

	"task-scheduler/internal/model"
	"task-scheduler/pkg/gcalendar"
)

// Publish creates a calendar event for b and returns its id.
func (r *implRepository) Publish(ctx context.Context, b model.Booking) (string, error) {
	ev, err := r.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.opt.CalendarID,
		Summary:     b.Title,
		Description: fmt.Sprintf("Priority: %s\nPlanned %d min of task %s.", b.Priority, b.DurationSeconds/60, b.TaskID),
		StartTime:   b.Start.In(r.opt.Location),
		EndTime:     b.End.In(r.opt.Location),
		Timezone:    r.opt.Location.String(),
		Private: map[string]string{
			PropBookingID: b.ID,
			PropTaskID:    b.TaskID,
		},
	})
	if err != nil {
		return "", err
	}
	return ev.ID, nil
}

// Unpublish deletes the event mirroring b.
func (r *implRepository) Unpublish(ctx context.Context, b model.Booking) error {
	if b.ExternalID == "" {
		return nil
	}
	return r.cal.DeleteEvent(ctx, r.opt.CalendarID, b.ExternalID)
}

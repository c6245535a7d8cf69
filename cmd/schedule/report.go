package main

import (
	"fmt"
	"io"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
)

const clock = "15:04"

func writeReport(w io.Writer, out scheduler.RunOutput) {
	fmt.Fprintf(w, "Run %s\n", out.RunID)
	if len(out.Frozen) > 0 {
		fmt.Fprintf(w, "Locked %d past booking(s)\n", len(out.Frozen))
	}

	for _, d := range out.Days {
		fmt.Fprintf(w, "\n%s (%s-%s)\n", d.Date.Format("Mon 2006-01-02"), d.WindowStart.Format(clock), d.WindowEnd.Format(clock))
		if len(d.Kept) > 0 {
			fmt.Fprintf(w, "  kept %d booking(s)\n", len(d.Kept))
		}
		for _, b := range d.Conflicts {
			fmt.Fprintf(w, "  removed %s\n", bookingLine(b))
		}
		for _, b := range d.Created {
			fmt.Fprintf(w, "  booked  %s\n", bookingLine(b))
		}
		if d.Duplicates > 0 {
			fmt.Fprintf(w, "  skipped %d duplicate(s)\n", d.Duplicates)
		}
		for _, u := range d.Unscheduled {
			fmt.Fprintf(w, "  unscheduled %q %d min left\n", u.Task.Name, u.RemainingSeconds/60)
		}
	}

	fmt.Fprintf(w, "\nTotal bookings: %d\n", out.TotalBookings)
	if len(out.Remaining) == 0 {
		fmt.Fprintln(w, "All tasks fully scheduled")
		return
	}
	fmt.Fprintln(w, "Still unscheduled:")
	for _, u := range out.Remaining {
		fmt.Fprintf(w, "  %q %d min\n", u.Task.Name, u.RemainingSeconds/60)
	}
}

func bookingLine(b model.Booking) string {
	return fmt.Sprintf("#%d [%s] %s-%s %s (%d min)",
		b.SlotIndex, b.Priority, b.Start.Format(clock), b.End.Format(clock), b.Title, b.DurationSeconds/60)
}

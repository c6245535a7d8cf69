package engine_test

import (
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/pkg/interval"
)

var day = time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC) // Monday

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func span(h1, m1, h2, m2 int) interval.Interval {
	return interval.New(at(h1, m1), at(h2, m2))
}

func task(id, name string, p model.Priority, required, minChunk, maxChunk int64) model.Task {
	return model.Task{
		ID:              id,
		Name:            name,
		Priority:        p,
		RequiredSeconds: required,
		MinChunkSeconds: minChunk,
		MaxChunkSeconds: maxChunk,
	}
}

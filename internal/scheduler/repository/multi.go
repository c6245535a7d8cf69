package repository

import (
	"context"

	"task-scheduler/internal/model"
)

type multiBusySource []BusySource

// MultiBusySource concatenates the busy time of several sources. Any source
// failing fails the whole read.
func MultiBusySource(sources ...BusySource) BusySource {
	return multiBusySource(sources)
}

func (m multiBusySource) ListBusy(ctx context.Context, opt ListBusyOptions) ([]model.BusyInterval, error) {
	var out []model.BusyInterval
	for _, s := range m {
		busy, err := s.ListBusy(ctx, opt)
		if err != nil {
			return nil, err
		}
		out = append(out, busy...)
	}
	return out, nil
}

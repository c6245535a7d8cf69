package http

import (
	"errors"
	"net/http"

	"task-scheduler/internal/scheduler"
	"task-scheduler/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrRunInProgress):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, scheduler.ErrNoRunYet):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, scheduler.ErrInvalidWorkWindow),
		errors.Is(err, scheduler.ErrInvalidHorizon),
		errors.Is(err, scheduler.ErrInvalidChunkPolicy),
		errors.Is(err, scheduler.ErrInvalidRankMode),
		errors.Is(err, scheduler.ErrInvalidMeeting),
		errors.Is(err, scheduler.ErrInvalidBookingFilter):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduler.ErrMeetingsUnavailable):
		return response.NewHTTPError(http.StatusNotImplemented, err.Error())
	case errors.Is(err, scheduler.ErrSourceFetch):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}

package http

import (
	"errors"
	"net/http"

	"task-scheduler/internal/task"
	"task-scheduler/pkg/response"
)

var errMissingID = response.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyName),
		errors.Is(err, task.ErrInvalidDuration),
		errors.Is(err, task.ErrInvalidChunk),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDate):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/pkg/response"
)

// Run godoc
// @Summary     Run the scheduler
// @Description Reconciles planned bookings with the calendar and fills the horizon. Returns 409 while another run is active.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body runReq false "Horizon override"
// @Success     200 {object} runResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Run in progress"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Calendar or store unavailable"
// @Router      /api/v1/schedule/run [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRunResp(out))
}

// Latest godoc
// @Summary     Latest run report
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "No run yet"
// @Router      /api/v1/schedule/latest [GET]
func (h *handler) Latest(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.LastRun(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRunResp(out))
}

// Bookings godoc
// @Summary     List bookings
// @Description Lists stored bookings overlapping [from, to). Dates accept RFC3339, YYYY-MM-DD, today or tomorrow.
// @Tags        Schedule
// @Produce     json
// @Param       from   query string false "Range start"
// @Param       to     query string false "Range end"
// @Param       status query string false "planned or locked"
// @Success     200 {object} bookingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/bookings [GET]
func (h *handler) Bookings(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processBookingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	bookings, err := h.uc.Bookings(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Bookings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, bookingsResp{Bookings: newBookingResps(bookings)})
}

// AddMeetings godoc
// @Summary     Add meetings
// @Description Stores meetings as busy time for later runs. Meetings already stored are skipped.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body meetingsReq true "Meetings"
// @Success     200 {object} meetingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     501 {object} response.Resp "Meeting store not configured"
// @Router      /api/v1/meetings [POST]
func (h *handler) AddMeetings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMeetingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.AddMeetings(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddMeetings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, meetingsResp{Stored: n})
}

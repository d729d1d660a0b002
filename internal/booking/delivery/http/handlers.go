package http

import (
	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
	"meetsync/pkg/response"
)

// Create godoc
// @Summary     Book a time slot
// @Description Reserves a slot on the host's schedule and creates the matching event on the host's calendar. No authentication: this is the invitee-facing endpoint.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(out))
}

// List godoc
// @Summary     List bookings
// @Description Returns the authenticated user's bookings, soonest first.
// @Tags        Bookings
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/bookings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

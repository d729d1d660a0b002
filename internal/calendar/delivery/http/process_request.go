package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTimeRange    = errors.New("end_time must be after start_time")
	errUnknownCalendarType = errors.New("unknown calendar type")
	errMissingID           = errors.New("id is required")
)

// processCreateEventReq binds and validates the create event request body.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListEventsReq binds and validates the list events query parameters.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateEventReq binds and validates the update event body + URI param.
func (h *handler) processUpdateEventReq(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processSyncReq binds the sync request body; an empty body syncs everything.
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAuthCallbackReq binds the OAuth redirect query parameters.
func (h *handler) processAuthCallbackReq(c *gin.Context) (authCallbackReq, error) {
	var req authCallbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processConnectFeedReq binds and validates the feed registration body.
func (h *handler) processConnectFeedReq(c *gin.Context) (connectFeedReq, error) {
	var req connectFeedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

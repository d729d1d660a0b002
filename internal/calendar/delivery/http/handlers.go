package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
	"meetsync/internal/model"
	"meetsync/pkg/response"
)

// CreateEvent godoc
// @Summary     Create a calendar event
// @Description Creates an event on the user's resolved calendar. With no calendar_integration_id the default integration is used, falling back to the primary of the default type, then to local-only storage.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden - integration belongs to another user"
// @Failure     404 {object} response.Resp "Not Found - integration does not exist"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ev, err := h.uc.CreateEvent(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(ev))
}

// ListEvents godoc
// @Summary     List calendar events
// @Description Returns the user's locally mirrored events, optionally filtered by time range, integration, or calendar type.
// @Tags        Events
// @Produce     json
// @Param       from query string false "RFC 3339 lower bound"
// @Param       to   query string false "RFC 3339 upper bound"
// @Param       calendar_integration_id query string false "Filter by integration"
// @Param       type query string false "Filter by calendar type (google/outlook/ical/local)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.ListEvents(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(events))
}

// DetailEvent godoc
// @Summary     Get event detail
// @Description Returns a single event by its ID.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} eventResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/events/{id} [GET]
func (h *handler) DetailEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	ev, err := h.uc.GetEvent(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(ev))
}

// UpdateEvent godoc
// @Summary     Update an event
// @Description Partially updates an event. Setting calendar_integration_id to a different integration moves the event to that calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Event ID"
// @Param       body body updateEventReq true "Fields to update"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ev, err := h.uc.UpdateEvent(ctx, middleware.GetScope(c), req.ID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(ev))
}

// DeleteEvent godoc
// @Summary     Delete an event
// @Description Removes the event locally and, where supported, from the owning provider.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeleteEvent(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SyncEvents godoc
// @Summary     Sync calendar events
// @Description Imports events from one integration, or from every connected integration when no id is given. Failures are reported per integration.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body syncReq false "Sync target"
// @Success     200 {object} syncResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/events/sync [POST]
func (h *handler) SyncEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SyncEvents(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncResp(out))
}

// AuthURL godoc
// @Summary     Get an OAuth authorization URL
// @Description Returns the provider consent URL to start connecting a Google or Outlook calendar.
// @Tags        Calendar
// @Produce     json
// @Param       type  path  string true  "Calendar type (google/outlook)"
// @Param       state query string false "Opaque state echoed back on the callback"
// @Success     200 {object} authURLResp
// @Failure     400 {object} response.Resp "Bad Request - unsupported type"
// @Security    BearerAuth
// @Router      /api/v1/calendar/connect/{type}/url [GET]
func (h *handler) AuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	typ := model.CalendarType(c.Param("type"))
	url, err := h.uc.AuthURL(ctx, middleware.GetScope(c), typ, c.Query("state"))
	if err != nil {
		h.l.Errorf(ctx, "uc.AuthURL: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, authURLResp{AuthURL: url})
}

// AuthCallback godoc
// @Summary     Complete an OAuth connection
// @Description Exchanges the authorization code and registers a new calendar integration. Repeating the flow adds another account rather than replacing the first.
// @Tags        Calendar
// @Produce     json
// @Param       type        path  string true  "Calendar type (google/outlook)"
// @Param       code        query string true  "Authorization code"
// @Param       calendar_id query string false "Calendar to bind instead of the primary one"
// @Param       name        query string false "Display name override"
// @Success     200 {object} integrationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/connect/{type}/callback [GET]
func (h *handler) AuthCallback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAuthCallbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	typ := model.CalendarType(c.Param("type"))
	in, err := h.uc.HandleAuthCallback(ctx, middleware.GetScope(c), typ, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleAuthCallback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIntegrationResp(in))
}

// ConnectFeed godoc
// @Summary     Connect an iCalendar feed
// @Description Validates that the URL serves iCalendar data and registers it as a read-only integration.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body connectFeedReq true "Feed data"
// @Success     200 {object} integrationResp
// @Failure     400 {object} response.Resp "Bad Request - URL does not serve iCalendar data"
// @Security    BearerAuth
// @Router      /api/v1/calendar/connect/ical [POST]
func (h *handler) ConnectFeed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConnectFeedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	in, err := h.uc.ConnectFeed(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ConnectFeed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIntegrationResp(in))
}

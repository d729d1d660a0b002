package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
	"meetsync/pkg/response"
)

// List godoc
// @Summary     List calendar integrations
// @Description Returns every calendar integration of the authenticated user.
// @Tags        Integrations
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/integrations [GET]
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

// Detail godoc
// @Summary     Get integration detail
// @Description Returns a single integration by its ID.
// @Tags        Integrations
// @Produce     json
// @Param       id path string true "Integration ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/calendar/integrations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	out, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(out))
}

// SetPrimary godoc
// @Summary     Mark an integration as primary
// @Description Makes the integration the primary one of its calendar type, clearing any previous primary of the same type.
// @Tags        Integrations
// @Produce     json
// @Param       id path string true "Integration ID"
// @Success     200 {object} setPrimaryResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/calendar/integrations/{id}/primary [PUT]
func (h *handler) SetPrimary(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	out, err := h.uc.SetPrimary(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPrimary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSetPrimaryResp(out))
}

// Disconnect godoc
// @Summary     Disconnect an integration
// @Description Marks the integration as disconnected without deleting its record or mirrored events.
// @Tags        Integrations
// @Produce     json
// @Param       id path string true "Integration ID"
// @Success     200 {object} disconnectResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/calendar/integrations/{id}/disconnect [PUT]
func (h *handler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	out, err := h.uc.Disconnect(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Disconnect: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDisconnectResp(out))
}

// Delete godoc
// @Summary     Delete an integration
// @Description Permanently removes the integration and its mirrored events.
// @Tags        Integrations
// @Produce     json
// @Param       id path string true "Integration ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/calendar/integrations/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

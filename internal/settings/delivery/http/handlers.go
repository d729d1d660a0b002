package http

import (
	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
	pkgErrors "meetsync/pkg/errors"
	"meetsync/pkg/response"
)

// Get godoc
// @Summary     Get user settings
// @Description Returns the user's scheduling preferences. A user who never saved settings gets the defaults (no default calendar, local-only events).
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Get(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "internal server error"))
		return
	}

	response.OK(c, newSettingsResp(out.Settings))
}

// Update godoc
// @Summary     Update user settings
// @Description Upserts the user's scheduling preferences.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "internal server error"))
		return
	}

	response.OK(c, newSettingsResp(out.Settings))
}

package http

import (
	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	integrations := rg.Group("/calendar/integrations")
	{
		integrations.GET("", mw.Auth(), h.List)
		integrations.GET("/:id", mw.Auth(), h.Detail)
		integrations.PUT("/:id/primary", mw.Auth(), h.SetPrimary)
		integrations.PUT("/:id/disconnect", mw.Auth(), h.Disconnect)
		integrations.DELETE("/:id", mw.Auth(), h.Delete)
	}
}

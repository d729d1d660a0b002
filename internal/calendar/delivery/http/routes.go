package http

import (
	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.Auth(), h.CreateEvent)
		events.GET("", mw.Auth(), h.ListEvents)
		events.GET("/:id", mw.Auth(), h.DetailEvent)
		events.PUT("/:id", mw.Auth(), h.UpdateEvent)
		events.DELETE("/:id", mw.Auth(), h.DeleteEvent)
		events.POST("/sync", mw.Auth(), h.SyncEvents)
	}

	connect := rg.Group("/calendar/connect")
	{
		connect.GET("/:type/url", mw.Auth(), h.AuthURL)
		connect.GET("/:type/callback", mw.Auth(), h.AuthCallback)
		connect.POST("/ical", mw.Auth(), h.ConnectFeed)
	}
}

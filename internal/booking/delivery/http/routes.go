package http

import (
	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Creation is public: invitees book a slot without an account.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", mw.Auth(), h.List)
	}
}

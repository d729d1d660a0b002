package http

import (
	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	st := rg.Group("/settings")
	{
		st.GET("", mw.Auth(), h.Get)
		st.PUT("", mw.Auth(), h.Update)
	}
}

package httpserver

import (
	"context"
	"fmt"
)

// Run wires all routes and serves until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}

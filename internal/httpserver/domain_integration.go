package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventRepoPg "meetsync/internal/event/repository/postgre"
	integrationHTTP "meetsync/internal/integration/delivery/http"
	integrationRepoPg "meetsync/internal/integration/repository/postgre"
	integrationUC "meetsync/internal/integration/usecase"
	"meetsync/internal/middleware"
)

// setupIntegrationDomain wires integration management (list, detail, primary,
// disconnect, delete). Connecting integrations lives in the calendar domain.
func (srv HTTPServer) setupIntegrationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := integrationRepoPg.New(srv.postgresDB, srv.l)
	eventRepo := eventRepoPg.New(srv.postgresDB, srv.l)

	uc := integrationUC.New(repo, eventRepo, srv.l)

	h := integrationHTTP.New(srv.l, uc)
	integrationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Integration domain registered")
	return nil
}

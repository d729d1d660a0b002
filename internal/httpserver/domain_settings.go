package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"meetsync/internal/middleware"
	settingsHTTP "meetsync/internal/settings/delivery/http"
	settingsRepoPg "meetsync/internal/settings/repository/postgre"
	settingsUC "meetsync/internal/settings/usecase"
)

// setupSettingsDomain wires the per-user scheduling preferences.
func (srv HTTPServer) setupSettingsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := settingsRepoPg.New(srv.postgresDB, srv.l)

	uc := settingsUC.New(repo, srv.l)

	h := settingsHTTP.New(srv.l, uc)
	settingsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Settings domain registered")
	return nil
}

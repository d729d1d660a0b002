package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "meetsync/internal/booking/delivery/http"
	bookingRepoPg "meetsync/internal/booking/repository/postgre"
	bookingUC "meetsync/internal/booking/usecase"
	"meetsync/internal/calendar"
	"meetsync/internal/middleware"
)

// setupBookingDomain wires invitee-facing bookings on top of the calendar
// orchestrator: each booking materializes an event on the host's calendar.
func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, calendarUseCase calendar.UseCase) error {
	repo := bookingRepoPg.New(srv.postgresDB, srv.l)

	uc := bookingUC.New(repo, calendarUseCase, srv.l)

	h := bookingHTTP.New(srv.l, uc)
	bookingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
	return nil
}

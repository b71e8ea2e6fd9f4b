package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Booking requires the refresh credential issued at login
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /tickets/ - book seats for a show
		r.Post("/tickets/", ticketHandler.BookTicket)

		// GET /tickets/ - view own booking history
		r.Get("/tickets/", ticketHandler.GetUserTickets)
	})
}

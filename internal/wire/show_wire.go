package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler) {
	// GET /shows/?movie_id=&cinema_id=&show_time=&show_date= (public)
	r.Get("/shows/", showHandler.ListShows)
}

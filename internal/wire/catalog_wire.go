package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /cities/ - list cities playing movies (public)
	r.Get("/cities/", catalogHandler.GetCities)

	// GET /movies/?city_id= - list movies playing in a city (public)
	r.Get("/movies/", catalogHandler.GetMovies)
}

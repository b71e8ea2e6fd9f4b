package adaptor

import (
	"errors"
	"net/http"

	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCities handles GET /cities/
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities := h.service.GetCities(r.Context())
	utils.ResponseSuccess(w, "success", cities)
}

// GetMovies handles GET /movies/?city_id=
func (h *CatalogHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	cityID := utils.ParseInt64(r.URL.Query().Get("city_id"))

	movies, err := h.service.GetMoviesByCity(r.Context(), cityID)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to get movies", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

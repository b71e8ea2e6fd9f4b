package adaptor

import (
	"errors"
	"net/http"

	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.ShowService
	log     *zap.Logger
}

func NewShowHandler(service usecase.ShowService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// ListShows handles GET /shows/?movie_id=&cinema_id=&show_time=&show_date=
func (h *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListShowsRequest{
		MovieID:  utils.ParseInt64(query.Get("movie_id")),
		CinemaID: utils.ParseInt64(query.Get("cinema_id")),
		ShowTime: query.Get("show_time"),
		ShowDate: query.Get("show_date"),
	}

	shows, err := h.service.ListShows(r.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to list shows", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

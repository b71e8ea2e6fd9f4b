package response

import (
	"ticket-booking/internal/data/entity"
)

type MovieResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:   movie.ID,
		Name: movie.Name,
	}
}

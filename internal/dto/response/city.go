package response

import (
	"ticket-booking/internal/data/entity"
)

type CityResponse struct {
	ID       int64  `json:"id"`
	CityName string `json:"city_name"`
}

func CityToResponse(city *entity.City) CityResponse {
	return CityResponse{
		ID:       city.ID,
		CityName: city.Name,
	}
}

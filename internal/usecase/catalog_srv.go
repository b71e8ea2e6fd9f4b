package usecase

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	GetCities(ctx context.Context) []response.CityResponse
	GetMoviesByCity(ctx context.Context, cityID int64) ([]response.MovieResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// GetCities never fails the request; a read failure is logged and an
// empty list goes out instead.
func (s *catalogService) GetCities(ctx context.Context) []response.CityResponse {
	cities, err := s.repo.City.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get cities", zap.Error(err))
		return []response.CityResponse{}
	}

	cityResponses := make([]response.CityResponse, len(cities))
	for i, city := range cities {
		cityResponses[i] = response.CityToResponse(city)
	}

	return cityResponses
}

func (s *catalogService) GetMoviesByCity(ctx context.Context, cityID int64) ([]response.MovieResponse, error) {
	if cityID == 0 {
		return nil, fmt.Errorf("%w: city_id is required", ErrValidation)
	}

	movies, err := s.repo.Movie.FindByCity(ctx, cityID)
	if err != nil {
		s.log.Error("Failed to get movies by city", zap.Error(err), zap.Int64("city_id", cityID))
		return nil, fmt.Errorf("get movies by city %d: %w", cityID, err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies retrieved", zap.Int64("city_id", cityID), zap.Int("count", len(movies)))
	return movieResponses, nil
}

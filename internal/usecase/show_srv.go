package usecase

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type ShowService interface {
	ListShows(ctx context.Context, req *request.ListShowsRequest) ([]*response.CinemaShowsResponse, error)
}

type showService struct {
	showRepo repository.ShowRepository
	log      *zap.Logger
}

func NewShowService(showRepo repository.ShowRepository, log *zap.Logger) ShowService {
	return &showService{
		showRepo: showRepo,
		log:      log.With(zap.String("service", "show")),
	}
}

func (s *showService) ListShows(ctx context.Context, req *request.ListShowsRequest) ([]*response.CinemaShowsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List shows validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	filter := repository.ShowFilter{MovieID: req.MovieID}
	if req.CinemaID != 0 {
		filter.CinemaID = &req.CinemaID
	}
	if req.ShowTime != "" {
		filter.ShowTime = &req.ShowTime
	}
	if req.ShowDate != "" {
		showDate, err := utils.ParseDate(req.ShowDate)
		if err != nil {
			s.log.Warn("Invalid show_date filter", zap.String("show_date", req.ShowDate), zap.Error(err))
			return nil, fmt.Errorf("%w: show_date must be in DD-MM-YYYY format", ErrValidation)
		}
		filter.ShowDate = &showDate
	}

	shows, err := s.showRepo.Search(ctx, filter)
	if err != nil {
		s.log.Error("Failed to search shows", zap.Error(err), zap.Int64("movie_id", req.MovieID))
		return nil, fmt.Errorf("list shows: %w", err)
	}

	// Group by cinema ID, keeping the repository's ordering. Keying by ID
	// instead of display name keeps same-named cinemas apart.
	groups := make(map[int64]*response.CinemaShowsResponse)
	var result []*response.CinemaShowsResponse
	for _, show := range shows {
		group, ok := groups[show.CinemaID]
		if !ok {
			group = &response.CinemaShowsResponse{
				CinemaID: show.CinemaID,
				Cinema:   show.CinemaName,
			}
			groups[show.CinemaID] = group
			result = append(result, group)
		}

		group.ShowTimes = append(group.ShowTimes, response.ShowTimeEntry{
			ShowTime:       show.ShowTime,
			AvailableSeats: show.SeatsLeft,
			ShowDate:       utils.FormatDate(show.ShowDate),
		})
	}

	s.log.Info("Shows listed",
		zap.Int64("movie_id", req.MovieID),
		zap.Int("cinemas", len(result)),
		zap.Int("shows", len(shows)),
	)

	return result, nil
}

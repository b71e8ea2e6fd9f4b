package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/pkg/database"
	"ticket-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookTicket(ctx context.Context, userID int64, req *request.BookTicketRequest) (*response.TicketResponse, error)
	GetUserTickets(ctx context.Context, userID int64) ([]response.TicketResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	db   database.PgxIface
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, db database.PgxIface, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		db:   db,
		log:  log.With(zap.String("service", "booking")),
	}
}

// BookTicket reserves seats and persists the ticket in one transaction,
// so a failed ticket insert rolls the seat decrement back instead of
// leaking capacity.
func (s *bookingService) BookTicket(ctx context.Context, userID int64, req *request.BookTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	ticketDate, err := utils.ParseDate(req.TicketDate)
	if err != nil {
		s.log.Warn("Invalid ticket_date", zap.String("ticket_date", req.TicketDate), zap.Error(err))
		return nil, fmt.Errorf("%w: ticket_date must be in DD-MM-YYYY format", ErrValidation)
	}

	key := repository.ShowKey{
		MovieID:  req.MovieID,
		CinemaID: req.CinemaID,
		ShowTime: req.ShowTime,
		ShowDate: ticketDate,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Show.Reserve(ctx, tx, key, req.NoOfSeats); err != nil {
		if errors.Is(err, repository.ErrShowNotFound) || errors.Is(err, repository.ErrInsufficientSeats) {
			return nil, err
		}
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	ticket := &entity.Ticket{
		TransactionID:   uuid.New(),
		UserID:          userID,
		MovieID:         req.MovieID,
		CinemaID:        req.CinemaID,
		ShowTime:        req.ShowTime,
		TicketDate:      ticketDate,
		NoOfSeats:       req.NoOfSeats,
		TransactionDate: time.Now(),
	}

	if err := s.repo.Ticket.Create(ctx, tx, ticket); err != nil {
		s.log.Error("Failed to persist ticket, rolling back reservation",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", req.MovieID),
			zap.Int64("cinema_id", req.CinemaID),
		)
		return nil, fmt.Errorf("persist ticket: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit booking transaction", zap.Error(err))
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	s.log.Info("Ticket booked",
		zap.String("transaction_id", ticket.TransactionID.String()),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", req.MovieID),
		zap.Int64("cinema_id", req.CinemaID),
		zap.String("show_time", req.ShowTime),
		zap.Int("no_of_seats", req.NoOfSeats),
	)

	ticketResp := response.TicketToResponse(ticket)
	return &ticketResp, nil
}

func (s *bookingService) GetUserTickets(ctx context.Context, userID int64) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Ticket.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user tickets", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get user tickets: %w", err)
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = response.TicketToResponse(ticket)
	}

	return ticketResponses, nil
}

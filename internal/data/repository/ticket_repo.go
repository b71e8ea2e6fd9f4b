package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type TicketRepository interface {
	// Create inserts a ticket; pass the booking transaction as q so the
	// insert commits or rolls back together with the seat decrement.
	Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (transaction_id, user_id, movie_id, cinema_id, show_time, ticket_date, no_of_seats, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		ticket.TransactionID,
		ticket.UserID,
		ticket.MovieID,
		ticket.CinemaID,
		ticket.ShowTime,
		ticket.TicketDate,
		ticket.NoOfSeats,
		ticket.TransactionDate,
	).Scan(&ticket.ID)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("transaction_id", ticket.TransactionID.String()),
			zap.Int64("user_id", ticket.UserID),
		)
		return fmt.Errorf("create ticket %s: %w", ticket.TransactionID.String(), err)
	}

	return nil
}

func (r *ticketRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Ticket, error) {
	query := `
		SELECT id, transaction_id, user_id, movie_id, cinema_id, show_time, ticket_date, no_of_seats, transaction_date
		FROM tickets
		WHERE user_id = $1
		ORDER BY transaction_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find tickets by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find tickets by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.TransactionID,
			&ticket.UserID,
			&ticket.MovieID,
			&ticket.CinemaID,
			&ticket.ShowTime,
			&ticket.TicketDate,
			&ticket.NoOfSeats,
			&ticket.TransactionDate,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

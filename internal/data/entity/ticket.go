package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is immutable once created; only the booking service writes it.
type Ticket struct {
	ID              int64     `db:"id"`
	TransactionID   uuid.UUID `db:"transaction_id"`
	UserID          int64     `db:"user_id"`
	MovieID         int64     `db:"movie_id"`
	CinemaID        int64     `db:"cinema_id"`
	ShowTime        string    `db:"show_time"`
	TicketDate      time.Time `db:"ticket_date"`
	NoOfSeats       int       `db:"no_of_seats"`
	TransactionDate time.Time `db:"transaction_date"`
}

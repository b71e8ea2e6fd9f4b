package response

import (
	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/utils"

	"time"
)

type TicketResponse struct {
	TransactionID   string    `json:"transaction_id"`
	MovieID         int64     `json:"movie_id"`
	CinemaID        int64     `json:"cinema_id"`
	ShowTime        string    `json:"show_time"`
	TicketDate      string    `json:"ticket_date"`
	NoOfSeats       int       `json:"no_of_seats"`
	TransactionDate time.Time `json:"transaction_date"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		TransactionID:   ticket.TransactionID.String(),
		MovieID:         ticket.MovieID,
		CinemaID:        ticket.CinemaID,
		ShowTime:        ticket.ShowTime,
		TicketDate:      utils.FormatDate(ticket.TicketDate),
		NoOfSeats:       ticket.NoOfSeats,
		TransactionDate: ticket.TransactionDate,
	}
}

package request

type BookTicketRequest struct {
	MovieID    int64  `json:"movie_id" validate:"required"`
	CinemaID   int64  `json:"cinema_id" validate:"required"`
	ShowTime   string `json:"show_time" validate:"required"`
	NoOfSeats  int    `json:"no_of_seats" validate:"required,min=1"`
	TicketDate string `json:"ticket_date" validate:"required"`
}

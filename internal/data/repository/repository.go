package repository

import (
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	City   CityRepository
	Movie  MovieRepository
	Show   ShowRepository
	Ticket TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		City:   NewCityRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Show:   NewShowRepository(db, log),
		Ticket: NewTicketRepository(db, log),
	}
}

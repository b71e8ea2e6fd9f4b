package usecase

import (
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/database"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Show    ShowService
	Booking BookingService
}

func NewService(repo *repository.Repository, db database.PgxIface, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config, log),
		Catalog: NewCatalogService(repo, log),
		Show:    NewShowService(repo.Show, log),
		Booking: NewBookingService(repo, db, log),
	}
}

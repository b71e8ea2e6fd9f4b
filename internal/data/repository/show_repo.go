package repository

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowKey is the composite identity of a show
type ShowKey struct {
	MovieID  int64
	CinemaID int64
	ShowTime string
	ShowDate time.Time
}

// ShowFilter narrows a show search; MovieID is mandatory
type ShowFilter struct {
	MovieID  int64
	CinemaID *int64
	ShowTime *string
	ShowDate *time.Time
}

// ShowWithCinema is a show row joined with its cinema name for listings
type ShowWithCinema struct {
	CinemaID   int64
	CinemaName string
	ShowTime   string
	ShowDate   time.Time
	SeatsLeft  int
}

type ShowRepository interface {
	FindByKey(ctx context.Context, key ShowKey) (*entity.Show, error)
	Search(ctx context.Context, filter ShowFilter) ([]*ShowWithCinema, error)

	// Reserve atomically checks and decrements the remaining seats via a
	// single conditional UPDATE. Run it on a pgx.Tx so the caller can roll
	// the decrement back if ticket persistence fails afterwards.
	Reserve(ctx context.Context, q database.Querier, key ShowKey, seats int) error
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) FindByKey(ctx context.Context, key ShowKey) (*entity.Show, error) {
	query := `
		SELECT movie_id, cinema_id, show_times, show_date, no_of_seats
		FROM shows
		WHERE movie_id = $1 AND cinema_id = $2 AND show_times = $3 AND show_date = $4
	`

	var show entity.Show
	err := r.db.QueryRow(ctx, query, key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate).Scan(
		&show.MovieID,
		&show.CinemaID,
		&show.ShowTime,
		&show.ShowDate,
		&show.SeatsLeft,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show",
			zap.Error(err),
			zap.Int64("movie_id", key.MovieID),
			zap.Int64("cinema_id", key.CinemaID),
			zap.String("show_time", key.ShowTime),
		)
		return nil, fmt.Errorf("find show: %w", err)
	}

	return &show, nil
}

func (r *showRepository) Search(ctx context.Context, filter ShowFilter) ([]*ShowWithCinema, error) {
	// Filters are conjunctive; ORDER BY pins the output so identical
	// searches return identical results.
	query := `
		SELECT s.cinema_id, c.name, s.show_times, s.show_date, s.no_of_seats
		FROM shows s
		JOIN cinemas c ON c.id = s.cinema_id
		WHERE s.movie_id = $1
			AND ($2::bigint IS NULL OR s.cinema_id = $2)
			AND ($3::text IS NULL OR s.show_times = $3)
			AND ($4::date IS NULL OR s.show_date = $4)
		ORDER BY s.cinema_id, s.show_times, s.show_date
	`

	rows, err := r.db.Query(ctx, query, filter.MovieID, filter.CinemaID, filter.ShowTime, filter.ShowDate)
	if err != nil {
		r.log.Error("Failed to search shows",
			zap.Error(err),
			zap.Int64("movie_id", filter.MovieID),
		)
		return nil, fmt.Errorf("search shows for movie %d: %w", filter.MovieID, err)
	}
	defer rows.Close()

	var shows []*ShowWithCinema
	for rows.Next() {
		var show ShowWithCinema
		err := rows.Scan(
			&show.CinemaID,
			&show.CinemaName,
			&show.ShowTime,
			&show.ShowDate,
			&show.SeatsLeft,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	return shows, nil
}

func (r *showRepository) Reserve(ctx context.Context, q database.Querier, key ShowKey, seats int) error {
	// Conditional decrement; the WHERE guard serializes concurrent
	// reservations on the same row so the counter never goes negative.
	query := `
		UPDATE shows
		SET no_of_seats = no_of_seats - $5
		WHERE movie_id = $1 AND cinema_id = $2 AND show_times = $3 AND show_date = $4
			AND no_of_seats >= $5
	`

	tag, err := q.Exec(ctx, query, key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate, seats)
	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.Int64("movie_id", key.MovieID),
			zap.Int64("cinema_id", key.CinemaID),
			zap.String("show_time", key.ShowTime),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("reserve %d seats: %w", seats, err)
	}

	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either the show does not exist or it lacks capacity.
	existsQuery := `
		SELECT no_of_seats
		FROM shows
		WHERE movie_id = $1 AND cinema_id = $2 AND show_times = $3 AND show_date = $4
	`

	var seatsLeft int
	err = q.QueryRow(ctx, existsQuery, key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate).Scan(&seatsLeft)
	if err == pgx.ErrNoRows {
		return ErrShowNotFound
	}
	if err != nil {
		r.log.Error("Failed to check show after reserve miss", zap.Error(err))
		return fmt.Errorf("check show: %w", err)
	}

	r.log.Warn("Reservation rejected, not enough seats",
		zap.Int64("movie_id", key.MovieID),
		zap.Int64("cinema_id", key.CinemaID),
		zap.String("show_time", key.ShowTime),
		zap.Int("seats_left", seatsLeft),
		zap.Int("requested", seats),
	)
	return ErrInsufficientSeats
}

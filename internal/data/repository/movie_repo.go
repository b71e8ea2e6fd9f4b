package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindByCity(ctx context.Context, cityID int64) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// FindByCity lists movies with at least one show in any cinema of the city
func (r *movieRepository) FindByCity(ctx context.Context, cityID int64) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.release_date
		FROM movies m
		JOIN shows s ON s.movie_id = m.id
		JOIN cinemas c ON c.id = s.cinema_id
		WHERE c.city = $1
		ORDER BY m.id
	`

	rows, err := r.db.Query(ctx, query, cityID)
	if err != nil {
		r.log.Error("Failed to find movies by city",
			zap.Error(err),
			zap.Int64("city_id", cityID),
		)
		return nil, fmt.Errorf("find movies by city %d: %w", cityID, err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		if err := rows.Scan(&movie.ID, &movie.Name, &movie.ReleaseDate); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, nil
}

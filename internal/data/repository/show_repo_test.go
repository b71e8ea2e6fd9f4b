package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testShowKey(t *testing.T) ShowKey {
	t.Helper()
	showDate, err := time.Parse("02-01-2006", "01-01-2024")
	require.NoError(t, err)
	return ShowKey{
		MovieID:  1,
		CinemaID: 1,
		ShowTime: "18:00",
		ShowDate: showDate,
	}
}

func TestReserve_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := testShowKey(t)

	mock.ExpectExec("UPDATE shows").
		WithArgs(key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate, 6).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewShowRepository(mock, zap.NewNop())
	err = repo.Reserve(context.Background(), mock, key, 6)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_InsufficientSeats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := testShowKey(t)

	// Conditional update touches no row, follow-up lookup finds the show
	// with too few seats left.
	mock.ExpectExec("UPDATE shows").
		WithArgs(key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT no_of_seats").
		WithArgs(key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate).
		WillReturnRows(pgxmock.NewRows([]string{"no_of_seats"}).AddRow(4))

	repo := NewShowRepository(mock, zap.NewNop())
	err = repo.Reserve(context.Background(), mock, key, 5)

	assert.ErrorIs(t, err, ErrInsufficientSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_ShowNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := testShowKey(t)
	key.MovieID = 99

	mock.ExpectExec("UPDATE shows").
		WithArgs(key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT no_of_seats").
		WithArgs(key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate).
		WillReturnError(pgx.ErrNoRows)

	repo := NewShowRepository(mock, zap.NewNop())
	err = repo.Reserve(context.Background(), mock, key, 2)

	assert.ErrorIs(t, err, ErrShowNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByKey_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := testShowKey(t)

	mock.ExpectQuery("SELECT movie_id, cinema_id").
		WithArgs(key.MovieID, key.CinemaID, key.ShowTime, key.ShowDate).
		WillReturnError(pgx.ErrNoRows)

	repo := NewShowRepository(mock, zap.NewNop())
	show, err := repo.FindByKey(context.Background(), key)

	assert.NoError(t, err)
	assert.Nil(t, show)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_AppliesFiltersAndOrdering(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	showDate, err := time.Parse("02-01-2006", "01-01-2024")
	require.NoError(t, err)

	cinemaID := int64(2)
	showTime := "18:00"
	filter := ShowFilter{
		MovieID:  1,
		CinemaID: &cinemaID,
		ShowTime: &showTime,
		ShowDate: &showDate,
	}

	rows := pgxmock.NewRows([]string{"cinema_id", "name", "show_times", "show_date", "no_of_seats"}).
		AddRow(int64(2), "Galaxy Central", "18:00", showDate, 10)

	mock.ExpectQuery("SELECT s.cinema_id, c.name").
		WithArgs(filter.MovieID, filter.CinemaID, filter.ShowTime, filter.ShowDate).
		WillReturnRows(rows)

	repo := NewShowRepository(mock, zap.NewNop())
	shows, err := repo.Search(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, int64(2), shows[0].CinemaID)
	assert.Equal(t, "Galaxy Central", shows[0].CinemaName)
	assert.Equal(t, "18:00", shows[0].ShowTime)
	assert.Equal(t, 10, shows[0].SeatsLeft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

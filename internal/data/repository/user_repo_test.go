package repository

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateUser_AssignsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	user := &entity.User{
		PhoneNumber:  "9876543210",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.PhoneNumber, user.PasswordHash, user.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewUserRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicatePhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	user := &entity.User{
		PhoneNumber:  "9876543210",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	// Unique index violation surfaces as the duplicate sentinel
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.PhoneNumber, user.PasswordHash, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := NewUserRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicatePhone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPhone_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, phone_number").
		WithArgs("0000000000").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock, zap.NewNop())
	user, err := repo.FindByPhone(context.Background(), "0000000000")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPhone_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Now()
	rows := pgxmock.NewRows([]string{"id", "phone_number", "password", "created_at"}).
		AddRow(int64(3), "9876543210", "$2a$10$hash", createdAt)

	mock.ExpectQuery("SELECT id, phone_number").
		WithArgs("9876543210").
		WillReturnRows(rows)

	repo := NewUserRepository(mock, zap.NewNop())
	user, err := repo.FindByPhone(context.Background(), "9876543210")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "9876543210", user.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

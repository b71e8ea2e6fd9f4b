package entity

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	PhoneNumber  string    `db:"phone_number"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}

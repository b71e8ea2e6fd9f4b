package repository

import (
	"errors"
)

// Sentinel errors surfaced by repositories; services and handlers
// match them with errors.Is.
var (
	ErrDuplicatePhone    = errors.New("phone number already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrShowNotFound      = errors.New("show not found")
	ErrInsufficientSeats = errors.New("not enough seats remaining")
)

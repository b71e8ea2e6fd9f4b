package usecase

import (
	"errors"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrUnknownPhone  = errors.New("unknown phone number")
	ErrWrongPassword = errors.New("wrong password")
)

package entity

import (
	"time"
)

// Show is one screening slot. Identity is the composite
// (movie, cinema, show_time, show_date); SeatsLeft only ever decreases.
type Show struct {
	MovieID   int64     `db:"movie_id"`
	CinemaID  int64     `db:"cinema_id"`
	ShowTime  string    `db:"show_time"`
	ShowDate  time.Time `db:"show_date"`
	SeatsLeft int       `db:"no_of_seats"`
}

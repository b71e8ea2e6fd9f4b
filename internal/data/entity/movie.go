package entity

import (
	"time"
)

type Movie struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	ReleaseDate *time.Time `db:"release_date"`
}

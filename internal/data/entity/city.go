package entity

type City struct {
	ID   int64  `db:"id"`
	Name string `db:"city_name"`
}

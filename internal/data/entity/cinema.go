package entity

type Cinema struct {
	ID        int64    `db:"id"`
	Name      string   `db:"name"`
	CityID    int64    `db:"city"`
	ShowTimes []string `db:"show_times"`
}

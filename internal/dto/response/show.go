package response

// ShowTimeEntry is one screening slot inside a cinema group
type ShowTimeEntry struct {
	ShowTime       string `json:"show_time"`
	AvailableSeats int    `json:"available_seats"`
	ShowDate       string `json:"show_date"`
}

// CinemaShowsResponse groups matching shows under one cinema. Grouping
// is keyed by cinema ID; the name is display data only, so two cinemas
// sharing a name stay separate.
type CinemaShowsResponse struct {
	CinemaID  int64           `json:"cinema_id"`
	Cinema    string          `json:"cinema"`
	ShowTimes []ShowTimeEntry `json:"show_times"`
}

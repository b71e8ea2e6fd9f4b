package request

// ListShowsRequest carries the /shows/ query filters; MovieID is the
// only mandatory one, the rest narrow the result when non-zero.
type ListShowsRequest struct {
	MovieID  int64  `validate:"required"`
	CinemaID int64
	ShowTime string
	ShowDate string
}

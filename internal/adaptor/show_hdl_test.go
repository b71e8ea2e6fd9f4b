package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockShowService mocks the show service interface
type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) ListShows(ctx context.Context, req *request.ListShowsRequest) ([]*response.CinemaShowsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.CinemaShowsResponse), args.Error(1)
}

func TestListShowsHandler_ParsesQueryFilters(t *testing.T) {
	service := new(MockShowService)
	service.On("ListShows", mock.Anything, &request.ListShowsRequest{
		MovieID:  1,
		CinemaID: 2,
		ShowTime: "18:00",
		ShowDate: "01-01-2024",
	}).Return([]*response.CinemaShowsResponse{
		{
			CinemaID: 2,
			Cinema:   "Galaxy Central",
			ShowTimes: []response.ShowTimeEntry{
				{ShowTime: "18:00", AvailableSeats: 10, ShowDate: "01-01-2024"},
			},
		},
	}, nil)

	handler := NewShowHandler(service, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet,
		"/shows/?movie_id=1&cinema_id=2&show_time=18:00&show_date=01-01-2024", nil)
	rec := httptest.NewRecorder()
	handler.ListShows(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
	service.AssertExpectations(t)
}

func TestListShowsHandler_MissingMovieIDIs400(t *testing.T) {
	service := new(MockShowService)
	service.On("ListShows", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrValidation)

	handler := NewShowHandler(service, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/shows/", nil)
	rec := httptest.NewRecorder()
	handler.ListShows(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

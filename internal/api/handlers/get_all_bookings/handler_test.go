package get_all_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asavich/GymClub-BookingService/internal/service/bookings/models"
)

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

type mockBookingsService struct {
	resp  *models.BookingListResponse
	err   error
	calls int
}

func (m *mockBookingsService) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestHandle_Success(t *testing.T) {
	svc := &mockBookingsService{resp: &models.BookingListResponse{
		Bookings: []models.BookingResponse{
			{ID: 2, Service: "Gym", Name: "Anna", BookingDate: "2025-07-01", StartTime: "11:00"},
			{ID: 1, Service: "BJJ", Name: "Ivan", BookingDate: "2025-07-01", StartTime: "10:00"},
		},
		Total: 2,
	}}
	h := NewHandler(svc, &mockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &mockBookingsService{err: errors.New("connection refused")}
	h := NewHandler(svc, &mockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

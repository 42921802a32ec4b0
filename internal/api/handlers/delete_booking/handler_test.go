package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	bookingsService "github.com/asavich/GymClub-BookingService/internal/service/bookings"
)

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

type mockBookingsService struct {
	err       error
	deletedID int64
	calls     int
}

func (m *mockBookingsService) Delete(ctx context.Context, id int64) error {
	m.calls++
	m.deletedID = id
	return m.err
}

func doRequest(t *testing.T, h *Handler, bookingID string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/bookings/{bookingId}", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+bookingID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &mockBookingsService{}
	h := NewHandler(svc, &mockLogger{})

	rec := doRequest(t, h, "42")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int64(42), svc.deletedID)
	assert.Equal(t, 1, svc.calls)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockBookingsService{err: bookingsService.ErrBookingNotFound}
	h := NewHandler(svc, &mockLogger{})

	rec := doRequest(t, h, "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &mockBookingsService{}
	h := NewHandler(svc, &mockLogger{})

	rec := doRequest(t, h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &mockBookingsService{err: errors.New("connection refused")}
	h := NewHandler(svc, &mockLogger{})

	rec := doRequest(t, h, "42")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

type mockBookingRepo struct {
	bookedTimes []types.TimeString
	err         error
	calls       int
}

func (m *mockBookingRepo) GetBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.bookedTimes, nil
}

type mockCache struct {
	stored   map[string][]types.TimeString
	getCalls int
	setCalls int
}

func newMockCache() *mockCache {
	return &mockCache{stored: make(map[string][]types.TimeString)}
}

func (m *mockCache) key(service string, date time.Time) string {
	return service + ":" + date.Format(domain.DateFormat)
}

func (m *mockCache) GetBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, bool) {
	m.getCalls++
	times, ok := m.stored[m.key(service, date)]
	return times, ok
}

func (m *mockCache) SetBookedTimes(ctx context.Context, service string, date time.Time, times []types.TimeString) {
	m.setCalls++
	m.stored[m.key(service, date)] = times
}

func testSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	s, err := domain.NewSchedule("10:00", "20:00", 15, []string{"Gym", "BJJ", "MMA", "Boxing"})
	require.NoError(t, err)
	return s
}

func testDate() time.Time {
	return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	repo := &mockBookingRepo{bookedTimes: []types.TimeString{"11:00"}}
	uc := NewUseCase(repo, nil, testSchedule(t), &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Service: "Gym", Date: testDate()})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 41)

	byTime := make(map[types.TimeString]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.Time] = s.Booked
	}

	// Занят ровно тот слот, что лежит в хранилище, соседний свободен
	assert.True(t, byTime["11:00"])
	assert.False(t, byTime["11:15"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["20:00"])
}

func TestExecute_NoBookings(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, nil, testSchedule(t), &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Service: "BJJ", Date: testDate()})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 41)
	for _, s := range resp.Slots {
		assert.False(t, s.Booked, "slot %s must be free", s.Time)
	}
}

func TestExecute_RepoErrorIsNotMasked(t *testing.T) {
	repo := &mockBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nil, testSchedule(t), &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Service: "Gym", Date: testDate()})

	// Ошибка хранилища не превращается в "все слоты свободны"
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "empty service", req: &Request{Date: testDate()}, wantErr: ErrInvalidInput},
		{name: "zero date", req: &Request{Service: "Gym"}, wantErr: ErrInvalidInput},
		{name: "unknown service", req: &Request{Service: "Yoga", Date: testDate()}, wantErr: ErrUnknownService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			uc := NewUseCase(repo, nil, testSchedule(t), &mockLogger{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls, "repository must not be touched on invalid input")
		})
	}
}

func TestExecute_CacheHitSkipsRepo(t *testing.T) {
	repo := &mockBookingRepo{bookedTimes: []types.TimeString{"12:00"}}
	cache := newMockCache()
	cache.stored[cache.key("Gym", testDate())] = []types.TimeString{"11:00"}
	uc := NewUseCase(repo, cache, testSchedule(t), &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Service: "Gym", Date: testDate()})

	require.NoError(t, err)
	assert.Zero(t, repo.calls)

	byTime := make(map[types.TimeString]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.Time] = s.Booked
	}
	assert.True(t, byTime["11:00"])
	assert.False(t, byTime["12:00"])
}

func TestExecute_CacheMissPopulatesCache(t *testing.T) {
	repo := &mockBookingRepo{bookedTimes: []types.TimeString{"14:30"}}
	cache := newMockCache()
	uc := NewUseCase(repo, cache, testSchedule(t), &mockLogger{})

	_, err := uc.Execute(context.Background(), &Request{Service: "MMA", Date: testDate()})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, []types.TimeString{"14:30"}, cache.stored[cache.key("MMA", testDate())])
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &mockBookingRepo{bookedTimes: []types.TimeString{"11:00", "16:45"}}
	uc := NewUseCase(repo, nil, testSchedule(t), &mockLogger{})

	first, err := uc.Execute(context.Background(), &Request{Service: "Gym", Date: testDate()})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Service: "Gym", Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

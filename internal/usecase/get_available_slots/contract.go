package get_available_slots

import (
	"context"
	"time"

	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBookedTimes получает занятые слоты для пары (услуга, дата)
	GetBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, error)
}

// BookedTimesCache интерфейс кэша занятых слотов (опционален, может быть nil)
type BookedTimesCache interface {
	GetBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, bool)
	SetBookedTimes(ctx context.Context, service string, date time.Time, times []types.TimeString)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

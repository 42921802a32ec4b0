package bookings

import (
	"context"
	"time"

	"github.com/asavich/GymClub-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) (*domain.SlotKey, error)
}

// BookedTimesCache интерфейс кэша занятых слотов (опционален, может быть nil)
type BookedTimesCache interface {
	Invalidate(ctx context.Context, service string, date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

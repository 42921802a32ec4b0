package create_booking

import (
	"context"
	"time"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBookedTimes получает занятые слоты для пары (услуга, дата).
	// Внутри транзакции строки блокируются (FOR UPDATE).
	GetBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, error)
	// Create создает бронирование; при занятом слоте возвращает ошибку уникальности
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// BookedTimesCache интерфейс кэша занятых слотов (опционален, может быть nil)
type BookedTimesCache interface {
	Invalidate(ctx context.Context, service string, date time.Time)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

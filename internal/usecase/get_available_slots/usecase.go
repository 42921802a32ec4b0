package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// UseCase use case для получения слотов дня с признаком занятости
type UseCase struct {
	bookingRepo BookingRepository
	cache       BookedTimesCache
	schedule    domain.Schedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil - тогда занятые слоты всегда читаются из БД.
func NewUseCase(
	bookingRepo BookingRepository,
	cache BookedTimesCache,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		cache:       cache,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.Service, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.schedule); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятые слоты для пары (услуга, дата)
	bookedTimes, err := uc.getBookedTimes(ctx, req.Service, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 3. Генерируем слоты рабочего дня и размечаем занятость.
	// Слот занят, если его строка дословно совпадает со значением из хранилища.
	booked := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	daySlots := uc.schedule.Slots()
	slots := make([]Slot, len(daySlots))
	for i, t := range daySlots {
		_, taken := booked[t]
		slots[i] = Slot{
			Time:   t,
			Booked: taken,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots (%d booked) for service=%s, date=%s",
		len(slots), len(bookedTimes), req.Service, req.Date.Format(domain.DateFormat))

	return &Response{
		Service: req.Service,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

// getBookedTimes читает занятые слоты через кэш (если он включен)
func (uc *UseCase) getBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, error) {
	if uc.cache != nil {
		if times, ok := uc.cache.GetBookedTimes(ctx, service, date); ok {
			return times, nil
		}
	}

	times, err := uc.bookingRepo.GetBookedTimes(ctx, service, date)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetBookedTimes(ctx, service, date, times)
	}

	return times, nil
}

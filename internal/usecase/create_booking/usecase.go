package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	bookingRepo "github.com/asavich/GymClub-BookingService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	cache        BookedTimesCache
	txManager    TransactionManager
	schedule     domain.Schedule
	yearWindow   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil - тогда инвалидация кэша не выполняется.
func NewUseCase(
	bookingRepo BookingRepository,
	cache BookedTimesCache,
	txManager TransactionManager,
	schedule domain.Schedule,
	yearWindow int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cache:        cache,
		txManager:    txManager,
		schedule:     schedule,
		yearWindow:   yearWindow,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Шаги валидации идут в фиксированном порядке и обрываются на первой ошибке.
// Проверка занятости и вставка выполняются в сериализуемой транзакции,
// а UNIQUE constraint в БД страхует от гонки между двумя клиентами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s",
		req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных (дата и время обязательны, имя и email непустые)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Год даты в допустимом окне
	if err := validateYear(req.Date, now, uc.yearWindow); err != nil {
		uc.logger.Warn("CreateBooking: year validation failed: %v", err)
		return nil, err
	}

	// 4. Дата не раньше завтрашнего дня
	if err := validateDateFromTomorrow(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s rejected, must be from tomorrow",
			req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 5. Услуга и время входят в расписание
	if err := validateSlot(req, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка занятости и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем занятые слоты с блокировкой (FOR UPDATE)
		bookedTimes, err := uc.bookingRepo.GetBookedTimes(txCtx, req.Service, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get booked times: %v", err)
			return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
		}

		// 6.2. Слот не должен быть занят - до попытки вставки
		for _, t := range bookedTimes {
			if t == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s already booked for service=%s, date=%s",
					req.StartTime, req.Service, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			Service:     req.Service,
			Name:        req.Name,
			Email:       req.Email,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная вставка на тот же слот: UNIQUE constraint сработал
			// раньше нашей проверки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: concurrent insert lost the slot %s for service=%s, date=%s",
					req.StartTime, req.Service, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Сбрасываем кэш занятых слотов для этой пары (услуга, дата)
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, req.Service, req.Date)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		Service:     result.Service,
		Name:        result.Name,
		Email:       result.Email,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		CreatedAt:   result.CreatedAt,
	}, nil
}

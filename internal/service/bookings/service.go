package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	bookingRepo "github.com/asavich/GymClub-BookingService/internal/infra/storage/booking"
	"github.com/asavich/GymClub-BookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований: список и удаление
type Service struct {
	bookingRepo BookingRepository
	cache       BookedTimesCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// cache может быть nil - тогда инвалидация кэша не выполняется.
func NewService(
	bookingRepo BookingRepository,
	cache BookedTimesCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// ListAll получает все бронирования, отсортированные по времени создания (сначала новые).
// Повторный вызов без изменений данных возвращает идентичный список.
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching all bookings")

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование по ID.
// Удаляется ровно одна запись; после удаления сбрасывается кэш занятых слотов
// для пары (услуга, дата) удаленной записи.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	key, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, key.Service, key.Date)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d (service=%s, date=%s, time=%s)",
		id, key.Service, key.Date.Format(domain.DateFormat), key.Time)
	return nil
}

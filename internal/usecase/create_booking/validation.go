package create_booking

import (
	"fmt"
	"time"

	"github.com/asavich/GymClub-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Имя и email проверяются только на непустоту, формат не валидируется.
func validateRequest(req *Request) error {
	// Дата и время проверяются первыми: это первый шаг валидации формы
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}

	return nil
}

// validateYear проверяет, что год даты в окне [текущий год, текущий год + window]
func validateYear(bookingDate time.Time, now time.Time, window int) error {
	year := bookingDate.Year()
	currentYear := now.Year()

	if year < currentYear || year > currentYear+window {
		return fmt.Errorf("%w: year %d is outside [%d, %d]", ErrInvalidYear, year, currentYear, currentYear+window)
	}

	return nil
}

// validateDateFromTomorrow проверяет, что дата не раньше завтрашнего дня.
// Бронирование день в день не допускается.
func validateDateFromTomorrow(bookingDate time.Time, now time.Time) error {
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, now.Location())

	if bookingDateOnly.Before(tomorrow) {
		return ErrDateTooSoon
	}

	return nil
}

// validateSlot проверяет, что услуга и время входят в расписание
func validateSlot(req *Request, schedule domain.Schedule) error {
	if !schedule.HasService(req.Service) {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	if !schedule.HasSlot(req.StartTime) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	return nil
}

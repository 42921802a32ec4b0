package get_available_slots

import (
	"fmt"

	"github.com/asavich/GymClub-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, schedule domain.Schedule) error {
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !schedule.HasService(req.Service) {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	return nil
}

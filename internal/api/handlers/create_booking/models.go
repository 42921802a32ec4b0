package create_booking

import (
	"time"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	createBooking "github.com/asavich/GymClub-BookingService/internal/usecase/create_booking"
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Service string `json:"service"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"` // "2025-10-15"
	Time    string `json:"time"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Service   string `json:"service"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Строгая проверка формата даты выполняется в handler до вызова.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Service:   r.Service,
		Name:      r.Name,
		Email:     r.Email,
		Date:      bookingDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Service:   resp.Service,
		Name:      resp.Name,
		Email:     resp.Email,
		Date:      resp.BookingDate.Format(domain.DateFormat),
		Time:      resp.StartTime.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

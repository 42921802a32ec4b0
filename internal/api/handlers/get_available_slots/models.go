package get_available_slots

import (
	"github.com/asavich/GymClub-BookingService/internal/domain"
	getAvailableSlots "github.com/asavich/GymClub-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами дня
type AvailableSlotsResponse struct {
	Service string         `json:"service"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:   s.Time.String(),
			Booked: s.Booked,
		})
	}

	return &AvailableSlotsResponse{
		Service: resp.Service,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

package domain

import (
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// Schedule расписание зала: рабочие часы, шаг слотов и список услуг.
// Значение собирается из конфигурации при старте и дальше не меняется.
type Schedule struct {
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	SlotStepMinutes int
	Services        []string
}

// NewSchedule создает расписание из строковых значений конфигурации
func NewSchedule(openTime, closeTime string, stepMinutes int, services []string) (Schedule, error) {
	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return Schedule{}, err
	}

	close, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{
		OpenTime:        open,
		CloseTime:       close,
		SlotStepMinutes: stepMinutes,
		Services:        services,
	}, nil
}

// Slots генерирует упорядоченный список слотов рабочего дня.
// Последовательность идет от открытия до закрытия включительно с фиксированным
// шагом: закрытие попадает в список, если ложится ровно на границу шага.
// Детерминирована и не имеет побочных эффектов.
// При open > close или step <= 0 возвращает пустой список.
func (s Schedule) Slots() []types.TimeString {
	slots := make([]types.TimeString, 0)

	if s.SlotStepMinutes <= 0 {
		return slots
	}

	start, err := s.OpenTime.Minutes()
	if err != nil {
		return slots
	}
	end, err := s.CloseTime.Minutes()
	if err != nil {
		return slots
	}

	// Условие строго "текущий <= конец": время закрытия само является бронируемым слотом
	for current := start; current <= end; current += s.SlotStepMinutes {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// HasSlot проверяет, что время является валидным слотом расписания
func (s Schedule) HasSlot(t types.TimeString) bool {
	for _, slot := range s.Slots() {
		if slot == t {
			return true
		}
	}
	return false
}

// HasService проверяет, что услуга присутствует в списке предлагаемых
func (s Schedule) HasService(service string) bool {
	for _, svc := range s.Services {
		if svc == service {
			return true
		}
	}
	return false
}

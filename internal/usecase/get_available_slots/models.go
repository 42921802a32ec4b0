package get_available_slots

import (
	"time"

	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Service string    // Название услуги
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов дня
type Response struct {
	Service string    // Услуга, для которой запрашивались слоты
	Date    time.Time // Дата, на которую запрашивались слоты
	Slots   []Slot    // Полный список слотов дня с признаком занятости
}

// Slot модель временного слота
type Slot struct {
	Time   types.TimeString // Время слота (например, "10:00")
	Booked bool             // Занят ли слот
}

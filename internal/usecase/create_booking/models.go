package create_booking

import (
	"time"

	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Service   string           // Название услуги
	Name      string           // Имя клиента
	Email     string           // Email клиента
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Service     string
	Name        string
	Email       string
	BookingDate time.Time
	StartTime   types.TimeString
	CreatedAt   time.Time
}

package domain

import (
	"time"

	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// Booking запись о бронировании занятия.
// Создается формой бронирования, удаляется администратором, никогда не изменяется.
type Booking struct {
	ID          int64
	Service     string // Название услуги из фиксированного списка (Gym, BJJ, ...)
	Name        string // Имя клиента, свободный текст
	Email       string // Email клиента, свободный текст
	BookingDate time.Time
	StartTime   types.TimeString
	CreatedAt   time.Time // Назначается БД, используется для сортировки в админке (DESC)
}

// SlotKey ключ слота бронирования.
// По инварианту в таблице существует не более одной записи на каждый ключ.
type SlotKey struct {
	Service string
	Date    time.Time
	Time    types.TimeString
}

// Key возвращает ключ слота бронирования
func (b *Booking) Key() SlotKey {
	return SlotKey{
		Service: b.Service,
		Date:    b.BookingDate,
		Time:    b.StartTime,
	}
}

package domain

// Дефолтные значения расписания (используются, если не заданы в конфигурации)
const (
	DefaultOpenTime        = "10:00"
	DefaultCloseTime       = "20:00"
	DefaultSlotStepMinutes = 15
)

// Business validation constants
const (
	// BookingYearWindow сколько лет вперед от текущего года допускается дата бронирования
	BookingYearWindow = 1

	MaxNameLength  = 200
	MaxEmailLength = 200
)

// DateFormat формат даты бронирования YYYY-MM-DD
const DateFormat = "2006-01-02"

// DefaultServices список услуг по умолчанию
var DefaultServices = []string{"Gym", "BJJ", "MMA", "Boxing"}

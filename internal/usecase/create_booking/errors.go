package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownService возвращается, когда услуга отсутствует в расписании
	ErrUnknownService = errors.New("unknown service")

	// ErrInvalidYear возвращается, когда год даты вне допустимого окна
	ErrInvalidYear = errors.New("booking year out of range")

	// ErrDateTooSoon возвращается, когда дата раньше завтрашнего дня
	ErrDateTooSoon = errors.New("date must be from tomorrow")

	// ErrInvalidTimeSlot возвращается, когда время не является слотом расписания
	ErrInvalidTimeSlot = errors.New("time is not a valid slot")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

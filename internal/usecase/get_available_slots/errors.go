package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownService возвращается, когда услуга отсутствует в расписании
	ErrUnknownService = errors.New("unknown service")

	// ErrInternal возвращается при внутренних ошибках usecase.
	// Ошибка запроса занятых слотов НЕ маскируется пустым списком:
	// показать занятый слот свободным хуже, чем вернуть ошибку.
	ErrInternal = errors.New("usecase: internal error")
)

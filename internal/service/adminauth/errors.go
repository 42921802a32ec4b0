package adminauth

import "errors"

var (
	// ErrWrongPassword возвращается при неверном пароле администратора
	ErrWrongPassword = errors.New("wrong admin password")

	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("invalid admin token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("adminauth: internal error")
)

package guesthouses

import "errors"

var (
	// ErrGuestHouseNotFound возвращается, когда гостевой дом не найден
	ErrGuestHouseNotFound = errors.New("guest house not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidMobile возвращается, когда номер телефона не состоит ровно из 10 цифр
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")

	// ErrTooManyRooms возвращается при превышении лимита комнат
	ErrTooManyRooms = errors.New("too many rooms")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

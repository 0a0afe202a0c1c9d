package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDateRange дата выезда раньше даты заезда
	ErrInvalidDateRange = errors.New("check-out date is before check-in date")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)

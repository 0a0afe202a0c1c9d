package check_availability

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// GuestHouseRepository интерфейс репозитория гостевых домов
type GuestHouseRepository interface {
	GetByName(ctx context.Context, name string) (*domain.GuestHouse, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByGuestHouse(ctx context.Context, guestHouseName string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

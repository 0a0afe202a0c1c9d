package get_house_stats

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// GuestHouseRepository интерфейс репозитория гостевых домов
type GuestHouseRepository interface {
	List(ctx context.Context, filterTerm string) ([]*domain.GuestHouse, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filterTerm string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

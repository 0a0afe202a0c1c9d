package create_booking

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListByGuestHouse(ctx context.Context, guestHouseName string) ([]*domain.Booking, error)
}

// GuestHouseRepository интерфейс репозитория гостевых домов
type GuestHouseRepository interface {
	GetByName(ctx context.Context, name string) (*domain.GuestHouse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

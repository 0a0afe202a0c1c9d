package bookings

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filterTerm string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

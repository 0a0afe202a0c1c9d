package guesthouses

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// GuestHouseRepository интерфейс репозитория гостевых домов
type GuestHouseRepository interface {
	Create(ctx context.Context, gh *domain.GuestHouse) (*domain.GuestHouse, error)
	GetByID(ctx context.Context, id int64) (*domain.GuestHouse, error)
	Update(ctx context.Context, id int64, gh *domain.GuestHouse) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filterTerm string) ([]*domain.GuestHouse, error)
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

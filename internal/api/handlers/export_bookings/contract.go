package export_bookings

import (
	"bytes"
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

type BookingRepository interface {
	List(ctx context.Context, filterTerm string) ([]*domain.Booking, error)
}

type Exporter interface {
	Bookings(bookings []*domain.Booking) (*bytes.Buffer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

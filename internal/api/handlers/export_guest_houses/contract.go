package export_guest_houses

import (
	"bytes"
	"context"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

type GuestHouseRepository interface {
	List(ctx context.Context, filterTerm string) ([]*domain.GuestHouse, error)
}

type Exporter interface {
	GuestHouses(houses []*domain.GuestHouse) (*bytes.Buffer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_guest_houses

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses/models"
)

type GuestHouseService interface {
	List(ctx context.Context, filterTerm string) (*models.GuestHouseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

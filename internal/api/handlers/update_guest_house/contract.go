package update_guest_house

import (
	"context"

	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses/models"
)

type GuestHouseService interface {
	Update(ctx context.Context, id int64, req *models.GuestHouseRequest) (*models.GuestHouseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

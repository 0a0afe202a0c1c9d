package get_guest_house_stats

import (
	"context"

	getHouseStats "github.com/m04kA/GHM-BookingService/internal/usecase/get_house_stats"
)

type GetHouseStatsUseCase interface {
	Execute(ctx context.Context) (*getHouseStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

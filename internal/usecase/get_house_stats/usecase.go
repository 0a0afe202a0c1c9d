package get_house_stats

import (
	"context"
	"fmt"
)

// UseCase use case для сводки занятости по гостевым домам
type UseCase struct {
	guestHouseRepo GuestHouseRepository
	bookingRepo    BookingRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guestHouseRepo GuestHouseRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		guestHouseRepo: guestHouseRepo,
		bookingRepo:    bookingRepo,
		logger:         logger,
	}
}

// Execute считает занятость по каждому зарегистрированному дому.
// Booked - общее число бронирований дома без фильтра по датам, поэтому
// сводка отражает нагрузку на дом, а не занятость в конкретный момент.
// Бронирования незарегистрированных домов в сводку не попадают.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	houses, err := uc.guestHouseRepo.List(ctx, "")
	if err != nil {
		uc.logger.Error("GetHouseStats: failed to list guest houses: %v", err)
		return nil, fmt.Errorf("%w: failed to list guest houses: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.List(ctx, "")
	if err != nil {
		uc.logger.Error("GetHouseStats: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	bookedByHouse := make(map[string]int, len(houses))
	for _, b := range bookings {
		bookedByHouse[b.GuestHouseName]++
	}

	stats := make([]HouseStats, 0, len(houses))
	for _, gh := range houses {
		total := gh.Capacity()
		booked := bookedByHouse[gh.Name]
		stats = append(stats, HouseStats{
			GuestHouseName: gh.Name,
			TotalRooms:     total,
			Booked:         booked,
			Available:      total - booked,
		})
	}

	uc.logger.Info("GetHouseStats: computed stats for %d guest houses", len(stats))
	return &Response{Stats: stats}, nil
}

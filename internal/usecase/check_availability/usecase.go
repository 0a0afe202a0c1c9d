package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	guesthouseRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/guesthouse"
)

// UseCase use case для расчета доступности комнат
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

// Execute выполняет расчет доступности: вместимость дома минус количество
// бронирований, пересекающихся с запрошенным диапазоном дат.
// Результат не обрезается снизу: отрицательное значение означает овербукинг.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: house=%q, checkIn=%s, checkOut=%s, rooms=%d",
		req.GuestHouseName, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.RoomsRequested)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	roomsRequested := req.RoomsRequested
	if roomsRequested == 0 {
		roomsRequested = domain.DefaultRoomsRequested
	}

	// 2. Получаем гостевой дом. Неизвестный дом - не ошибка:
	// вместимость считается нулевой
	var house *domain.GuestHouse
	gh, err := uc.guestHouseRepo.GetByName(ctx, req.GuestHouseName)
	switch {
	case err == nil:
		house = gh
	case errors.Is(err, guesthouseRepo.ErrGuestHouseNotFound):
		uc.logger.Warn("CheckAvailability: guest house %q is not registered, capacity is zero", req.GuestHouseName)
	default:
		uc.logger.Error("CheckAvailability: failed to get guest house %q: %v", req.GuestHouseName, err)
		return nil, fmt.Errorf("%w: failed to get guest house: %v", ErrInternal, err)
	}

	// 3. Получаем все бронирования этого дома
	bookings, err := uc.bookingRepo.ListByGuestHouse(ctx, req.GuestHouseName)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings for %q: %v", req.GuestHouseName, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Считаем конфликты и доступность
	totalRooms := countRooms(house, req.Occupancy)
	booked := countConflictingBookings(bookings, req.CheckIn, req.CheckOut)
	available := totalRooms - booked

	uc.logger.Info("CheckAvailability: house=%q total=%d booked=%d available=%d",
		req.GuestHouseName, totalRooms, booked, available)

	return &Response{
		GuestHouseName: req.GuestHouseName,
		CheckIn:        req.CheckIn.Format(domain.DateFormat),
		CheckOut:       req.CheckOut.Format(domain.DateFormat),
		TotalRooms:     totalRooms,
		Booked:         booked,
		Available:      available,
		Sufficient:     available >= roomsRequested,
	}, nil
}

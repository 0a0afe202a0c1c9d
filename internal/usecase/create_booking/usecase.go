package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	guesthouseRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/guesthouse"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	guestHouseRepo GuestHouseRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guestHouseRepo GuestHouseRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		guestHouseRepo: guestHouseRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Нехватка комнат не блокирует создание: регистрация заявки важнее,
// чем арифметика вместимости, овербукинг разрешает администратор.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%q, house=%q, checkIn=%s, checkOut=%s",
		req.GuestName, req.GuestHouseName, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result          *domain.Booking
		capacityWarning string
	)

	// 2. Выполняем операции с БД в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем гостевой дом. Неизвестный дом - не ошибка,
		// бронирование остается висячей ссылкой по имени
		var totalRooms int
		gh, err := uc.guestHouseRepo.GetByName(txCtx, req.GuestHouseName)
		switch {
		case err == nil:
			totalRooms = gh.Capacity()
		case errors.Is(err, guesthouseRepo.ErrGuestHouseNotFound):
			uc.logger.Warn("CreateBooking: guest house %q is not registered", req.GuestHouseName)
		default:
			uc.logger.Error("CreateBooking: failed to get guest house %q: %v", req.GuestHouseName, err)
			return fmt.Errorf("%w: failed to get guest house: %v", ErrInternal, err)
		}

		// 2.2. Считаем конфликтующие бронирования на запрошенные даты
		existing, err := uc.bookingRepo.ListByGuestHouse(txCtx, req.GuestHouseName)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for %q: %v", req.GuestHouseName, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		booked := 0
		for _, b := range existing {
			if b.Overlaps(req.CheckIn, req.CheckOut) {
				booked++
			}
		}

		// 2.3. Предупреждаем о нехватке комнат, но не блокируем
		if booked >= totalRooms {
			capacityWarning = fmt.Sprintf("guest house %q has %d rooms and %d bookings on the requested dates",
				req.GuestHouseName, totalRooms, booked)
			uc.logger.Warn("CreateBooking: %s", capacityWarning)
		}

		// 2.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, req.toDomain())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		GuestName:       result.GuestName,
		GuestContact:    result.GuestContact,
		EmployeeID:      result.EmployeeID,
		Department:      result.Department,
		Designation:     result.Designation,
		CostCenter:      result.CostCenter,
		EmployeeLevel:   result.EmployeeLevel,
		Purpose:         result.Purpose,
		ModeOfTravel:    result.ModeOfTravel,
		ComingFrom:      result.ComingFrom,
		GoingBack:       result.GoingBack,
		CheckIn:         result.CheckIn.Format(domain.DateFormat),
		CheckOut:        result.CheckOut.Format(domain.DateFormat),
		Nights:          result.Nights(),
		GuestHouseName:  result.GuestHouseName,
		RoomNumber:      result.RoomNumber,
		CapacityWarning: capacityWarning,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

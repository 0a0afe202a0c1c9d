package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GHM-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования, опционально отфильтрованные по подстроке
// в имени гостя, названии гостевого дома, отделе или цели поездки
func (s *Service) List(ctx context.Context, filterTerm string) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filterTerm)
	if err != nil {
		s.logger.Error("List: repository error (filter=%q): %v", filterTerm, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings (filter=%q)", len(bookings), filterTerm)
	return models.FromDomainBookingList(bookings), nil
}

// Update целиком заменяет запись бронирования по ID.
// ID бронирования неизменяем, даты проверяются на корректный порядок.
func (s *Service) Update(ctx context.Context, id int64, req *models.BookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d for guest=%q", id, req.GuestName)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, err)
		return nil, err
	}

	booking, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid dates for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: dates must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if booking.CheckOut.Before(booking.CheckIn) {
		s.logger.Warn("Update: check-out before check-in for booking id=%d", id)
		return nil, ErrInvalidDateRange
	}

	if err := s.bookingRepo.Update(ctx, id, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование по ID.
// Операция идемпотентна: удаление несуществующего бронирования не ошибка.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d already absent", id)
			return nil
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

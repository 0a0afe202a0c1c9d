package guesthouses

import (
	"context"
	"errors"
	"fmt"

	guesthouseRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/guesthouse"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses/models"
)

// Service сервис реестра гостевых домов
type Service struct {
	repo   GuestHouseRepository
	txMgr  TransactionManager
	logger Logger
}

// NewService создает новый экземпляр сервиса реестра
func NewService(repo GuestHouseRepository, txMgr TransactionManager, logger Logger) *Service {
	return &Service{
		repo:   repo,
		txMgr:  txMgr,
		logger: logger,
	}
}

// Create добавляет гостевой дом в реестр.
// Счетчик комнат и список деталей синхронизируются до записи, поэтому
// после любой мутации len(roomDetails) равен заявленному числу комнат.
func (s *Service) Create(ctx context.Context, req *models.GuestHouseRequest) (*models.GuestHouseResponse, error) {
	s.logger.Info("CreateGuestHouse: name=%q rooms=%d", req.Name, req.Rooms)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("CreateGuestHouse: validation failed for name=%q: %v", req.Name, err)
		return nil, err
	}

	gh := req.ToDomain()

	var created *models.GuestHouseResponse
	err := s.txMgr.Do(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, gh)
		if err != nil {
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		created = models.FromDomainGuestHouse(result)
		return nil
	})
	if err != nil {
		s.logger.Error("CreateGuestHouse: failed for name=%q: %v", req.Name, err)
		return nil, err
	}

	s.logger.Info("CreateGuestHouse: created id=%d name=%q capacity=%d", created.ID, created.Name, created.Rooms)
	return created, nil
}

// Update целиком заменяет запись гостевого дома по ID
func (s *Service) Update(ctx context.Context, id int64, req *models.GuestHouseRequest) (*models.GuestHouseResponse, error) {
	s.logger.Info("UpdateGuestHouse: id=%d name=%q", id, req.Name)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("UpdateGuestHouse: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	gh := req.ToDomain()

	err := s.txMgr.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, id, gh)
	})
	if err != nil {
		if errors.Is(err, guesthouseRepo.ErrGuestHouseNotFound) {
			s.logger.Warn("UpdateGuestHouse: id=%d not found", id)
			return nil, ErrGuestHouseNotFound
		}
		s.logger.Error("UpdateGuestHouse: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateGuestHouse: failed to reload id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateGuestHouse: updated id=%d name=%q capacity=%d", id, updated.Name, updated.Capacity())
	return models.FromDomainGuestHouse(updated), nil
}

// Delete удаляет гостевой дом из реестра.
// Бронирования, ссылающиеся на него, остаются висячими - это осознанная
// мягкая политика ссылочной целостности.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteGuestHouse: id=%d", id)

	err := s.txMgr.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, guesthouseRepo.ErrGuestHouseNotFound) {
			s.logger.Warn("DeleteGuestHouse: id=%d not found", id)
			return ErrGuestHouseNotFound
		}
		s.logger.Error("DeleteGuestHouse: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteGuestHouse: deleted id=%d", id)
	return nil
}

// List возвращает гостевые дома, опционально отфильтрованные по подстроке
// в имени, адресе или имени смотрителя
func (s *Service) List(ctx context.Context, filterTerm string) (*models.GuestHouseListResponse, error) {
	houses, err := s.repo.List(ctx, filterTerm)
	if err != nil {
		s.logger.Error("ListGuestHouses: repository error (filter=%q): %v", filterTerm, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListGuestHouses: fetched %d guest houses (filter=%q)", len(houses), filterTerm)
	return models.FromDomainGuestHouseList(houses), nil
}

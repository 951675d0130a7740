package labs

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	labstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/lab"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs/models"
)

// Service сервис управления лабораториями (исследовательскими группами)
type Service struct {
	labRepo   LabRepository
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса лабораторий
func NewService(
	labRepo LabRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		labRepo:   labRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает все лаборатории. Доступно любому вошедшему пользователю
func (s *Service) List(ctx context.Context) (*models.LabListResponse, error) {
	labs, err := s.labRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLabList(labs), nil
}

// Create создает лабораторию. Доступно только администратору
func (s *Service) Create(ctx context.Context, req *models.CreateLabRequest) (*models.LabResponse, error) {
	s.logger.Info("Create: lab %q by %s", req.Name, req.Requester)

	if err := s.checkAdminAccess(ctx, req.Requester); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.labRepo.Create(ctx, &domain.Lab{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		s.logger.Error("Create: repository error for lab %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: lab %q created with id=%d", created.Name, created.ID)
	return models.FromDomainLab(created), nil
}

// Update изменяет название и описание лаборатории.
// Снимки в существующих бронированиях не обновляются
func (s *Service) Update(ctx context.Context, labID int64, req *models.UpdateLabRequest) (*models.LabResponse, error) {
	s.logger.Info("Update: lab id=%d by %s", labID, req.Requester)

	if err := s.checkAdminAccess(ctx, req.Requester); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	lab := &domain.Lab{
		ID:          labID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.labRepo.Update(ctx, lab); err != nil {
		if errors.Is(err, labstorage.ErrLabNotFound) {
			s.logger.Warn("Update: lab id=%d not found", labID)
			return nil, ErrLabNotFound
		}
		s.logger.Error("Update: repository error for lab id=%d: %v", labID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: lab id=%d updated", labID)
	return models.FromDomainLab(lab), nil
}

// Delete удаляет лабораторию. Проверка привязанных пользователей и само
// удаление выполняются в одной транзакции, чтобы между ними никто не успел
// привязаться к удаляемой лаборатории
func (s *Service) Delete(ctx context.Context, labID int64, requester string) error {
	s.logger.Info("Delete: lab id=%d by %s", labID, requester)

	if err := s.checkAdminAccess(ctx, requester); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.labRepo.CountUsers(ctx, labID)
		if err != nil {
			return fmt.Errorf("%w: Delete - count users: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("Delete: lab id=%d has %d assigned users", labID, count)
			return ErrLabInUse
		}

		if err := s.labRepo.Delete(ctx, labID); err != nil {
			if errors.Is(err, labstorage.ErrLabNotFound) {
				return ErrLabNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrLabInUse) || errors.Is(err, ErrLabNotFound) {
			return err
		}
		s.logger.Error("Delete: transaction failed for lab id=%d: %v", labID, err)
		return err
	}

	s.logger.Info("Delete: lab id=%d deleted", labID)
	return nil
}

// checkAdminAccess проверяет, что запрашивающий является администратором
func (s *Service) checkAdminAccess(ctx context.Context, requester string) error {
	user, err := s.userRepo.GetByUsername(ctx, requester)
	if err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user %s not found", requester)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get user %s: %v", requester, err)
		return fmt.Errorf("%w: checkAdminAccess - repository error: %v", ErrInternal, err)
	}

	if !user.IsAdmin || !user.Active {
		s.logger.Warn("checkAdminAccess: user %s is not an active administrator", requester)
		return ErrAccessDenied
	}

	return nil
}

package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/users/models"
)

// Service административный сервис управления пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List возвращает всех пользователей системы. Доступно только администратору
func (s *Service) List(ctx context.Context, requester string) (*models.UserListResponse, error) {
	if err := s.checkAdminAccess(ctx, requester); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// UpdateInstruments изменяет персональный список разрешенных инструментов.
// Заблокированному пользователю разрешения не выдаются
func (s *Service) UpdateInstruments(ctx context.Context, userID int64, req *models.UpdateInstrumentsRequest) error {
	s.logger.Info("UpdateInstruments: user id=%d, instruments=%v by %s", userID, req.Instruments, req.Requester)

	if err := s.checkAdminAccess(ctx, req.Requester); err != nil {
		return err
	}

	for _, instrument := range req.Instruments {
		if !domain.IsKnownInstrument(instrument) {
			s.logger.Warn("UpdateInstruments: unknown instrument %q", instrument)
			return fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
		}
	}

	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			s.logger.Warn("UpdateInstruments: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("UpdateInstruments: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdateInstruments - repository error: %v", ErrInternal, err)
	}

	if !target.Active {
		s.logger.Warn("UpdateInstruments: user id=%d is deactivated", userID)
		return ErrUserInactive
	}

	if err := s.userRepo.UpdateInstruments(ctx, userID, req.Instruments); err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdateInstruments: repository error for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdateInstruments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateInstruments: user id=%d instruments set to %v", userID, req.Instruments)
	return nil
}

// UpdateActive блокирует или разблокирует пользователя.
// Блокировка закрывает вход в систему, но не удаляет существующие бронирования
func (s *Service) UpdateActive(ctx context.Context, userID int64, req *models.UpdateActiveRequest) error {
	if req.Active == nil {
		return fmt.Errorf("%w: active flag is required", ErrInvalidInput)
	}

	s.logger.Info("UpdateActive: user id=%d, active=%t by %s", userID, *req.Active, req.Requester)

	if err := s.checkAdminAccess(ctx, req.Requester); err != nil {
		return err
	}

	if err := s.userRepo.UpdateActive(ctx, userID, *req.Active); err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			s.logger.Warn("UpdateActive: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("UpdateActive: repository error for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdateActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateActive: user id=%d active set to %t", userID, *req.Active)
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

package auth

import (
	"context"
	"errors"
	"fmt"

	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/auth/models"
)

// Service сервис аутентификации.
// Пароли хранятся и сравниваются открытым текстом: система живет во
// внутренней сети лаборатории, учетные записи заводит администратор
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login проверяет пару логин/пароль и возвращает профиль пользователя.
// Заблокированный пользователь (active=false) войти не может
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user %s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if user.Password != req.Password {
		s.logger.Warn("Login: wrong password for user %s", req.Username)
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		s.logger.Warn("Login: deactivated user %s attempted to log in", req.Username)
		return nil, ErrUserInactive
	}

	s.logger.Info("Login: user %s logged in", req.Username)
	return models.FromDomainUser(user), nil
}

package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	settingsstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/settings"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/settings/models"
)

// Service сервис настроек: конфигурация сетки слотов и текст правил
type Service struct {
	settingsRepo SettingsRepository
	userRepo     UserRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetSlotConfig возвращает активную конфигурацию сетки слотов.
// Доступно только администратору; при отсутствии сохраненной конфигурации
// возвращается конфигурация по умолчанию
func (s *Service) GetSlotConfig(ctx context.Context, requester string) (*models.SlotConfigResponse, error) {
	if err := s.checkAdminAccess(ctx, requester); err != nil {
		return nil, err
	}

	config, err := s.settingsRepo.Load(ctx, domain.TimeSlotConfigName)
	if err != nil {
		if errors.Is(err, settingsstorage.ErrConfigNotFound) {
			defaultConfig := domain.DefaultTimeSlotConfig
			return models.FromDomainConfig(&defaultConfig), nil
		}
		s.logger.Error("GetSlotConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSlotConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// UpdateSlotConfig сохраняет конфигурацию сетки слотов.
// Конфигурация с интервалом, не делящим окно нацело, отклоняется.
// Уже существующие бронирования со слотами старой сетки не трогаются:
// они перестают отображаться в расписании, но продолжают занимать слот
func (s *Service) UpdateSlotConfig(ctx context.Context, req *models.UpdateSlotConfigRequest) (*models.SlotConfigResponse, error) {
	s.logger.Info("UpdateSlotConfig: by %s", req.Requester)

	if err := s.checkAdminAccess(ctx, req.Requester); err != nil {
		return nil, err
	}

	config := req.ToDomainConfig()
	if err := config.Validate(); err != nil {
		s.logger.Warn("UpdateSlotConfig: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := s.settingsRepo.Save(ctx, config); err != nil {
		s.logger.Error("UpdateSlotConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSlotConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSlotConfig: config saved: day %s-%s/%dm, night %s-%s/%dm",
		config.DayStart, config.DayEnd, config.DayIntervalMinutes,
		config.NightStart, config.NightEnd, config.NightIntervalMinutes)
	return models.FromDomainConfig(config), nil
}

// GetRules возвращает текст правил пользования. Доступно без входа в систему:
// правила показываются на экране входа
func (s *Service) GetRules(ctx context.Context) (*models.RulesResponse, error) {
	rules, err := s.settingsRepo.LoadRules(ctx)
	if err != nil {
		if errors.Is(err, settingsstorage.ErrRulesNotFound) {
			return &models.RulesResponse{Rules: append([]string(nil), domain.DefaultRules...)}, nil
		}
		s.logger.Error("GetRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRules - repository error: %v", ErrInternal, err)
	}

	return &models.RulesResponse{Rules: rules}, nil
}

// UpdateRules сохраняет текст правил пользования. Доступно только администратору
func (s *Service) UpdateRules(ctx context.Context, req *models.UpdateRulesRequest) error {
	s.logger.Info("UpdateRules: %d lines by %s", len(req.Rules), req.Requester)

	if err := s.checkAdminAccess(ctx, req.Requester); err != nil {
		return err
	}

	if len(req.Rules) == 0 {
		return fmt.Errorf("%w: rules must not be empty", ErrInvalidInput)
	}

	if err := s.settingsRepo.SaveRules(ctx, req.Rules); err != nil {
		s.logger.Error("UpdateRules: repository error: %v", err)
		return fmt.Errorf("%w: UpdateRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRules: rules saved")
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

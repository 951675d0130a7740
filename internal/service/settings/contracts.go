package settings

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Load(ctx context.Context, name string) (*domain.TimeSlotConfig, error)
	Save(ctx context.Context, config *domain.TimeSlotConfig) error
	LoadRules(ctx context.Context) ([]string, error)
	SaveRules(ctx context.Context, rules []string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"context"
	"time"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// LabRepository интерфейс репозитория лабораторий
type LabRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lab, error)
}

// SettingsRepository интерфейс репозитория настроек сетки слотов
type SettingsRepository interface {
	Load(ctx context.Context, name string) (*domain.TimeSlotConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package labs

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// LabRepository интерфейс репозитория лабораторий
type LabRepository interface {
	List(ctx context.Context) ([]*domain.Lab, error)
	GetByID(ctx context.Context, id int64) (*domain.Lab, error)
	Create(ctx context.Context, lab *domain.Lab) (*domain.Lab, error)
	Update(ctx context.Context, lab *domain.Lab) error
	Delete(ctx context.Context, id int64) error
	CountUsers(ctx context.Context, labID int64) (int64, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

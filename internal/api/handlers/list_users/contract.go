package list_users

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context, requester string) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

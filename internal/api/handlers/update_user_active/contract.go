package update_user_active

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/users/models"
)

type UserService interface {
	UpdateActive(ctx context.Context, userID int64, req *models.UpdateActiveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

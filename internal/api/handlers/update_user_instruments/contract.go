package update_user_instruments

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/users/models"
)

type UserService interface {
	UpdateInstruments(ctx context.Context, userID int64, req *models.UpdateInstrumentsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

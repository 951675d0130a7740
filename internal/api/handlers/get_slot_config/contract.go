package get_slot_config

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/settings/models"
)

type SettingsService interface {
	GetSlotConfig(ctx context.Context, requester string) (*models.SlotConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

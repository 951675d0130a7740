package update_slot_config

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/settings/models"
)

type SettingsService interface {
	UpdateSlotConfig(ctx context.Context, req *models.UpdateSlotConfigRequest) (*models.SlotConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_rules

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/settings/models"
)

type SettingsService interface {
	UpdateRules(ctx context.Context, req *models.UpdateRulesRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

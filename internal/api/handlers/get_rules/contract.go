package get_rules

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/settings/models"
)

type SettingsService interface {
	GetRules(ctx context.Context) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

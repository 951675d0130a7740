package update_lab

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/labs/models"
)

type LabService interface {
	Update(ctx context.Context, labID int64, req *models.UpdateLabRequest) (*models.LabResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

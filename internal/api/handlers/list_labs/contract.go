package list_labs

import (
	"context"

	"github.com/kitty100176/nmr-booking-system/internal/service/labs/models"
)

type LabService interface {
	List(ctx context.Context) (*models.LabListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

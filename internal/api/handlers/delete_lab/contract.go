package delete_lab

import "context"

type LabService interface {
	Delete(ctx context.Context, labID int64, requester string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

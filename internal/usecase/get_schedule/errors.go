package get_schedule

import "errors"

var (
	// ErrInvalidRequest возвращается, когда инструмент или дата не заданы
	ErrInvalidRequest = errors.New("get_schedule: invalid request")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("get_schedule: user not found")

	// ErrPermissionDenied возвращается при запросе расписания инструмента
	// вне персонального списка разрешений
	ErrPermissionDenied = errors.New("get_schedule: instrument is not allowed for this user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)

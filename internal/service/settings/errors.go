package settings

import "errors"

var (
	// ErrAccessDenied возвращается, когда запрашивающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidConfig возвращается при сохранении некорректной конфигурации
	// сетки слотов
	ErrInvalidConfig = errors.New("invalid time slot config")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

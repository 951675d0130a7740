package labs

import "errors"

var (
	// ErrLabNotFound возвращается, когда лаборатория не найдена
	ErrLabNotFound = errors.New("lab not found")

	// ErrLabInUse возвращается при удалении лаборатории, к которой
	// привязаны пользователи
	ErrLabInUse = errors.New("lab has assigned users")

	// ErrAccessDenied возвращается, когда запрашивающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

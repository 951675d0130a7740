package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда запрашивающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrUnknownInstrument возвращается при выдаче разрешения на инструмент
	// вне перечня спектрометров
	ErrUnknownInstrument = errors.New("unknown instrument")

	// ErrUserInactive возвращается при попытке выдать разрешения
	// заблокированному пользователю
	ErrUserInactive = errors.New("user account is deactivated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

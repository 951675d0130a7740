package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	// без прав администратора
	ErrAccessDenied = errors.New("access denied")

	// ErrPastTimeSlot возвращается при попытке отменить бронирование,
	// слот которого уже начался
	ErrPastTimeSlot = errors.New("time slot is in the past")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

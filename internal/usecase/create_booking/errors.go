package create_booking

import "errors"

var (
	// ErrInvalidRequest возвращается, когда инструмент, дата или слот не заданы
	ErrInvalidRequest = errors.New("create_booking: invalid request")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrPermissionDenied возвращается при попытке забронировать инструмент
	// вне персонального списка разрешений
	ErrPermissionDenied = errors.New("create_booking: instrument is not allowed for this user")

	// ErrInvalidSlot возвращается, когда метка слота не входит в текущую сетку
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrPastTimeSlot возвращается, когда начало слота уже прошло
	ErrPastTimeSlot = errors.New("create_booking: time slot is in the past")

	// ErrSlotAlreadyBooked возвращается при проигрыше гонки за слот —
	// ожидаемый исход, после которого вызывающая сторона перечитывает сетку
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

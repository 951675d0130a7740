package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
	// Несуществующий логин и неверный пароль не различаются в ответе
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserInactive возвращается при попытке входа заблокированного пользователя
	ErrUserInactive = errors.New("user account is deactivated")

	// ErrInvalidInput возвращается при пустом логине или пароле
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

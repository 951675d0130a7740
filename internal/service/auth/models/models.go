package models

import "github.com/kitty100176/nmr-booking-system/internal/domain"

// LoginRequest запрос на вход в систему
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse ответ с данными вошедшего пользователя
type UserResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	LabID       int64    `json:"labId"`
	Instruments []string `json:"instruments"` // Инструменты, доступные для бронирования
	IsAdmin     bool     `json:"isAdmin"`
}

// FromDomainUser конвертирует domain модель в response.
// Пароль в ответ не попадает; список инструментов уже учитывает
// административный доступ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		LabID:       u.LabID,
		Instruments: u.AllowedInstruments(),
		IsAdmin:     u.IsAdmin,
	}
}

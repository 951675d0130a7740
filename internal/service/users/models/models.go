package models

import "github.com/kitty100176/nmr-booking-system/internal/domain"

// UpdateInstrumentsRequest запрос на изменение списка разрешенных инструментов
type UpdateInstrumentsRequest struct {
	Requester   string   `json:"-"` // Учетная запись администратора
	Instruments []string `json:"instruments"`
}

// UpdateActiveRequest запрос на блокировку или разблокировку пользователя.
// Указатель отличает пропущенное поле от явного false
type UpdateActiveRequest struct {
	Requester string `json:"-"` // Учетная запись администратора
	Active    *bool  `json:"active"`
}

// UserResponse ответ с данными пользователя для административного списка
type UserResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	LabID       int64    `json:"labId"`
	Instruments []string `json:"instruments"` // Персональный список разрешений
	IsAdmin     bool     `json:"isAdmin"`
	Active      bool     `json:"active"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// FromDomainUser конвертирует domain модель в response
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		LabID:       u.LabID,
		Instruments: append([]string(nil), u.Instruments...),
		IsAdmin:     u.IsAdmin,
		Active:      u.Active,
	}
}

// FromDomainUserList конвертирует список domain моделей в response
func FromDomainUserList(users []*domain.User) *UserListResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return &UserListResponse{Users: result}
}

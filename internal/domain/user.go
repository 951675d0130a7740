package domain

import "time"

// User пользователь системы бронирования.
// Instruments — персональный список инструментов, на которые выдано
// разрешение. Active=false блокирует вход и выдачу разрешений
type User struct {
	ID          int64
	Username    string
	Password    string
	DisplayName string
	LabID       int64
	Instruments []string
	IsAdmin     bool
	Active      bool
	CreatedAt   time.Time
}

// AllowedInstruments возвращает инструменты, доступные пользователю для
// бронирования: персональный список, а для администратора — весь перечень
func (u *User) AllowedInstruments() []string {
	if u.IsAdmin {
		return append([]string(nil), Instruments...)
	}
	return append([]string(nil), u.Instruments...)
}

// CanUse проверяет право бронировать указанный инструмент
func (u *User) CanUse(instrument string) bool {
	for _, i := range u.AllowedInstruments() {
		if i == instrument {
			return true
		}
	}
	return false
}

// HasInstrument проверяет наличие инструмента в персональном списке
// (без учета административного доступа)
func (u *User) HasInstrument(instrument string) bool {
	for _, i := range u.Instruments {
		if i == instrument {
			return true
		}
	}
	return false
}

package domain

import "time"

// Booking бронирование одного слота на инструменте.
// DisplayName, LabID и LabName — снимок данных пользователя на момент
// создания: при последующем редактировании профиля или лаборатории
// исторические бронирования не обновляются.
// Инвариант уникальности (instrument, date, time_slot) обеспечивает БД
type Booking struct {
	ID          int64
	Username    string
	DisplayName string
	LabID       int64
	LabName     string
	Instrument  string
	Date        time.Time
	TimeSlot    SlotLabel
	BookedAt    time.Time
}

// IsOwnedBy проверяет, что бронирование принадлежит пользователю
func (b *Booking) IsOwnedBy(username string) bool {
	return b.Username == username
}

package create_booking

import (
	"time"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Username   string           // Учетная запись, от имени которой создается бронирование
	Instrument string           // Метка инструмента (например "500")
	Date       time.Time        // Дата бронирования (без времени)
	TimeSlot   domain.SlotLabel // Метка слота (например "09:00-09:30")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	Username   string
	Instrument string
	Date       time.Time
	TimeSlot   domain.SlotLabel

	// Снимок данных пользователя на момент бронирования
	DisplayName string
	LabID       int64
	LabName     string

	BookedAt time.Time
}

package models

import (
	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Username string `json:"username"` // Учетная запись, от имени которой выполняется отмена
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Instrument string `json:"instrument"`
	Date       string `json:"date"`     // "2026-03-10"
	TimeSlot   string `json:"timeSlot"` // "09:00-09:30"

	// Снимок данных пользователя на момент бронирования
	DisplayName string `json:"displayName"`
	LabID       int64  `json:"labId"`
	LabName     string `json:"labName"`

	BookedAt string `json:"bookedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		Username:    b.Username,
		Instrument:  b.Instrument,
		Date:        b.Date.Format(domain.DateFormat),
		TimeSlot:    b.TimeSlot.String(),
		DisplayName: b.DisplayName,
		LabID:       b.LabID,
		LabName:     b.LabName,
		BookedAt:    b.BookedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

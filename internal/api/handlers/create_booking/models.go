package create_booking

import (
	"time"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	createBooking "github.com/kitty100176/nmr-booking-system/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Instrument string `json:"instrument"` // "500"
	Date       string `json:"date"`       // "2026-03-10"
	TimeSlot   string `json:"timeSlot"`   // "09:00-09:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Instrument  string `json:"instrument"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	DisplayName string `json:"displayName"`
	LabID       int64  `json:"labId"`
	LabName     string `json:"labName"`
	BookedAt    string `json:"bookedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(username string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Username:   username,
		Instrument: r.Instrument,
		Date:       date,
		TimeSlot:   domain.SlotLabel(r.TimeSlot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Username:    resp.Username,
		Instrument:  resp.Instrument,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
		DisplayName: resp.DisplayName,
		LabID:       resp.LabID,
		LabName:     resp.LabName,
		BookedAt:    resp.BookedAt.Format(time.RFC3339),
	}
}

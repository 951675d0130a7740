package get_schedule

import (
	"github.com/kitty100176/nmr-booking-system/internal/domain"
	getSchedule "github.com/kitty100176/nmr-booking-system/internal/usecase/get_schedule"
)

// BookedByResponse данные владельца занятого слота
type BookedByResponse struct {
	BookingID   int64  `json:"bookingId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	LabName     string `json:"labName"`
}

// SlotResponse один слот расписания
type SlotResponse struct {
	TimeSlot string            `json:"timeSlot"` // "09:00-09:30"
	State    string            `json:"state"`    // free | booked | past
	BookedBy *BookedByResponse `json:"bookedBy,omitempty"`
	IsMine   bool              `json:"isMine"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Instrument string         `json:"instrument"`
	Date       string         `json:"date"` // "2026-03-10"
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slot := SlotResponse{
			TimeSlot: s.TimeSlot.String(),
			State:    string(s.State),
			IsMine:   s.IsMine,
		}
		if s.BookedBy != nil {
			slot.BookedBy = &BookedByResponse{
				BookingID:   s.BookedBy.BookingID,
				Username:    s.BookedBy.Username,
				DisplayName: s.BookedBy.DisplayName,
				LabName:     s.BookedBy.LabName,
			}
		}
		slots = append(slots, slot)
	}

	return &ScheduleResponse{
		Instrument: resp.Instrument,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}

package get_schedule

import (
	"time"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// resolveSlots вычисляет состояние каждого слота сетки на указанную дату.
//
// Порядок проверок фиксирован: занятость важнее прошедшести. Занятый слот
// остается "booked" даже после своего начала, чтобы в расписании было видно,
// кто работает на приборе прямо сейчас.
// Бронирования со слотами вне текущей сетки (оставшиеся после смены
// конфигурации) в расписание не попадают
func resolveSlots(
	grid []domain.SlotLabel,
	bookings []*domain.Booking,
	date time.Time,
	username string,
	now time.Time,
) []Slot {
	bookedBySlot := make(map[domain.SlotLabel]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bookedBySlot[b.TimeSlot] = b
	}

	result := make([]Slot, 0, len(grid))

	for _, label := range grid {
		slot := Slot{TimeSlot: label, State: SlotStateFree}

		if b, ok := bookedBySlot[label]; ok {
			slot.State = SlotStateBooked
			slot.IsMine = b.IsOwnedBy(username)
			slot.BookedBy = &BookedBy{
				BookingID:   b.ID,
				Username:    b.Username,
				DisplayName: b.DisplayName,
				LabName:     b.LabName,
			}
		} else if past, err := domain.IsSlotPast(date, label, now); err == nil && past {
			slot.State = SlotStatePast
		}

		result = append(result, slot)
	}

	return result
}

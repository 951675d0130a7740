package get_schedule

import (
	"time"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
)

// SlotState состояние слота в расписании одного дня
type SlotState string

const (
	// SlotStateFree слот свободен и может быть забронирован
	SlotStateFree SlotState = "free"
	// SlotStateBooked слот занят; занятость важнее прошедшести
	SlotStateBooked SlotState = "booked"
	// SlotStatePast слот свободен, но его начало уже прошло
	SlotStatePast SlotState = "past"
)

// Request модель запроса расписания инструмента на дату
type Request struct {
	Username   string    // Учетная запись, запрашивающая расписание
	Instrument string    // Метка инструмента
	Date       time.Time // Дата расписания
}

// BookedBy данные владельца занятого слота для отображения в расписании
type BookedBy struct {
	BookingID   int64
	Username    string
	DisplayName string
	LabName     string
}

// Slot один слот расписания с вычисленным состоянием
type Slot struct {
	TimeSlot domain.SlotLabel
	State    SlotState
	BookedBy *BookedBy // nil для свободных и прошедших слотов
	IsMine   bool      // Занят ли слот самим запрашивающим
}

// Response модель ответа с расписанием инструмента на дату
type Response struct {
	Instrument string
	Date       time.Time
	Slots      []Slot
}

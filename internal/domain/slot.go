package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kitty100176/nmr-booking-system/pkg/types"
)

// ErrInvalidSlot возвращается при некорректной метке слота
var ErrInvalidSlot = errors.New("domain: invalid slot label")

const minutesPerDay = 24 * 60

// SlotLabel метка одного бронируемого интервала в пределах календарного дня
// в формате "HH:MM-HH:MM" (например "09:00-09:30" или ночная "21:00-09:00")
// Слоты генерируются из TimeSlotConfig при каждом рендере и не хранятся в БД
type SlotLabel string

// NewSlotLabel формирует метку слота из минут с начала суток
// Конец ровно в полночь рендерится как "24:00", время за полуночью — по модулю суток
func NewSlotLabel(startMinutes, endMinutes int) SlotLabel {
	return SlotLabel(formatSlotMinutes(startMinutes, false) + "-" + formatSlotMinutes(endMinutes, true))
}

func formatSlotMinutes(m int, isEnd bool) string {
	if isEnd && m == minutesPerDay {
		return "24:00"
	}
	m %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// String возвращает строковое представление метки
func (s SlotLabel) String() string {
	return string(s)
}

// Parse разбирает метку на время начала и конца
// Конец "24:00" допустим (слот упирается в полночь)
func (s SlotLabel) Parse() (start types.TimeString, end types.TimeString, err error) {
	parts := strings.SplitN(string(s), "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlot, string(s))
	}

	start, err = types.NewTimeStringFromString(parts[0])
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlot, string(s))
	}

	if parts[1] == "24:00" {
		return start, types.TimeString("24:00"), nil
	}
	end, err = types.NewTimeStringFromString(parts[1])
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlot, string(s))
	}

	return start, end, nil
}

// Start возвращает время начала слота
func (s SlotLabel) Start() (types.TimeString, error) {
	start, _, err := s.Parse()
	return start, err
}

// IsSlotPast проверяет, что начало слота на указанную дату уже прошло
// относительно now (временной шлюз: прошедшие слоты нельзя ни бронировать,
// ни отменять). Время now передается явно, чтобы проверка была детерминированной
func IsSlotPast(date time.Time, slot SlotLabel, now time.Time) (bool, error) {
	start, err := slot.Start()
	if err != nil {
		return false, err
	}

	m, err := start.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidSlot, string(slot))
	}

	startAt := time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, now.Location())
	return startAt.Before(now), nil
}

package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kitty100176/nmr-booking-system/pkg/types"
)

// ErrInvalidTimeSlotConfig возвращается при некорректной конфигурации сетки слотов
var ErrInvalidTimeSlotConfig = errors.New("domain: invalid time slot config")

// TimeSlotConfig конфигурация сетки бронируемых интервалов одного дня.
// В системе существует ровно одна активная конфигурация (именованный
// singleton-объект, изменяемый администратором).
// Дневное окно не пересекает полночь; ночное окно может переходить
// через полночь (night_end численно раньше night_start)
type TimeSlotConfig struct {
	Name                 string
	DayStart             types.TimeString
	DayEnd               types.TimeString
	DayIntervalMinutes   int
	NightStart           types.TimeString
	NightEnd             types.TimeString
	NightIntervalMinutes int
	UpdatedAt            time.Time
}

// Validate проверяет конфигурацию перед сохранением.
// Интервал обязан нацело делить свое окно: конфигурации с "рваным"
// последним слотом отклоняются на этапе сохранения
func (c *TimeSlotConfig) Validate() error {
	dayStart, dayEnd, err := c.windowBounds(c.DayStart, c.DayEnd, false)
	if err != nil {
		return fmt.Errorf("%w: day window: %v", ErrInvalidTimeSlotConfig, err)
	}

	nightStart, nightEnd, err := c.windowBounds(c.NightStart, c.NightEnd, true)
	if err != nil {
		return fmt.Errorf("%w: night window: %v", ErrInvalidTimeSlotConfig, err)
	}

	if c.DayIntervalMinutes <= 0 {
		return fmt.Errorf("%w: day interval must be positive", ErrInvalidTimeSlotConfig)
	}
	if c.NightIntervalMinutes <= 0 {
		return fmt.Errorf("%w: night interval must be positive", ErrInvalidTimeSlotConfig)
	}

	if (dayEnd-dayStart)%c.DayIntervalMinutes != 0 {
		return fmt.Errorf("%w: day interval %d does not evenly divide window %s-%s",
			ErrInvalidTimeSlotConfig, c.DayIntervalMinutes, c.DayStart, c.DayEnd)
	}
	if (nightEnd-nightStart)%c.NightIntervalMinutes != 0 {
		return fmt.Errorf("%w: night interval %d does not evenly divide window %s-%s",
			ErrInvalidTimeSlotConfig, c.NightIntervalMinutes, c.NightStart, c.NightEnd)
	}

	return nil
}

// windowBounds возвращает границы окна в минутах с начала суток.
// Для ночного окна конец, численно не превышающий начало, означает переход
// через полночь и сдвигается на сутки вперед
func (c *TimeSlotConfig) windowBounds(start, end types.TimeString, allowWrap bool) (int, int, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return 0, 0, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0, 0, err
	}

	if endMin <= startMin {
		if !allowWrap {
			return 0, 0, fmt.Errorf("end %s must be after start %s", end, start)
		}
		endMin += minutesPerDay
	}

	return startMin, endMin, nil
}

// GenerateSlots генерирует упорядоченный список меток слотов одного дня.
// Чистая детерминированная функция конфигурации: от даты не зависит.
// Дневное и ночное окна шагаются каждое своим интервалом; результат
// сортируется по времени начала, дубликаты по началу отбрасываются
// (пересечение окон — ошибка конфигурации администратора, не пользователя)
func (c *TimeSlotConfig) GenerateSlots() ([]SlotLabel, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	type span struct {
		start, end int
	}

	var spans []span

	step := func(windowStart, windowEnd, interval int) {
		for start := windowStart; start < windowEnd; start += interval {
			end := start + interval
			// Защита от "рваного" последнего слота в строке, сохраненной
			// до появления валидации: конец прижимается к границе окна
			if end > windowEnd {
				end = windowEnd
			}
			spans = append(spans, span{start: start, end: end})
		}
	}

	dayStart, dayEnd, _ := c.windowBounds(c.DayStart, c.DayEnd, false)
	nightStart, nightEnd, _ := c.windowBounds(c.NightStart, c.NightEnd, true)

	step(dayStart, dayEnd, c.DayIntervalMinutes)
	step(nightStart, nightEnd, c.NightIntervalMinutes)

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	slots := make([]SlotLabel, 0, len(spans))
	seen := make(map[string]struct{}, len(spans))

	for _, sp := range spans {
		startLabel := formatSlotMinutes(sp.start, false)
		if _, ok := seen[startLabel]; ok {
			continue
		}
		seen[startLabel] = struct{}{}
		slots = append(slots, NewSlotLabel(sp.start, sp.end))
	}

	return slots, nil
}

// ContainsSlot проверяет, что метка входит в сетку текущей конфигурации
func (c *TimeSlotConfig) ContainsSlot(slot SlotLabel) (bool, error) {
	slots, err := c.GenerateSlots()
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s == slot {
			return true, nil
		}
	}
	return false, nil
}

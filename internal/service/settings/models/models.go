package models

import (
	"github.com/kitty100176/nmr-booking-system/internal/domain"
	"github.com/kitty100176/nmr-booking-system/pkg/types"
)

// UpdateSlotConfigRequest запрос на изменение конфигурации сетки слотов
type UpdateSlotConfigRequest struct {
	Requester            string `json:"-"` // Учетная запись администратора
	DayStart             string `json:"dayStart"`  // "09:00"
	DayEnd               string `json:"dayEnd"`    // "21:00"
	DayIntervalMinutes   int    `json:"dayIntervalMinutes"`
	NightStart           string `json:"nightStart"`
	NightEnd             string `json:"nightEnd"`
	NightIntervalMinutes int    `json:"nightIntervalMinutes"`
}

// ToDomainConfig конвертирует request в domain конфигурацию
func (r *UpdateSlotConfigRequest) ToDomainConfig() *domain.TimeSlotConfig {
	return &domain.TimeSlotConfig{
		Name:                 domain.TimeSlotConfigName,
		DayStart:             types.TimeString(r.DayStart),
		DayEnd:               types.TimeString(r.DayEnd),
		DayIntervalMinutes:   r.DayIntervalMinutes,
		NightStart:           types.TimeString(r.NightStart),
		NightEnd:             types.TimeString(r.NightEnd),
		NightIntervalMinutes: r.NightIntervalMinutes,
	}
}

// UpdateRulesRequest запрос на изменение текста правил пользования
type UpdateRulesRequest struct {
	Requester string   `json:"-"`
	Rules     []string `json:"rules"`
}

// SlotConfigResponse ответ с конфигурацией сетки слотов
type SlotConfigResponse struct {
	DayStart             string `json:"dayStart"`
	DayEnd               string `json:"dayEnd"`
	DayIntervalMinutes   int    `json:"dayIntervalMinutes"`
	NightStart           string `json:"nightStart"`
	NightEnd             string `json:"nightEnd"`
	NightIntervalMinutes int    `json:"nightIntervalMinutes"`
}

// RulesResponse ответ с текстом правил пользования
type RulesResponse struct {
	Rules []string `json:"rules"`
}

// FromDomainConfig конвертирует domain конфигурацию в response
func FromDomainConfig(c *domain.TimeSlotConfig) *SlotConfigResponse {
	return &SlotConfigResponse{
		DayStart:             c.DayStart.String(),
		DayEnd:               c.DayEnd.String(),
		DayIntervalMinutes:   c.DayIntervalMinutes,
		NightStart:           c.NightStart.String(),
		NightEnd:             c.NightEnd.String(),
		NightIntervalMinutes: c.NightIntervalMinutes,
	}
}

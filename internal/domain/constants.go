package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Instruments перечень спектрометров лаборатории (метки частоты в МГц)
// Используется как ключ бронирования и для выдачи прав доступа
var Instruments = []string{"60", "500"}

// IsKnownInstrument проверяет, что метка инструмента входит в перечень
func IsKnownInstrument(instrument string) bool {
	for _, i := range Instruments {
		if i == instrument {
			return true
		}
	}
	return false
}

// TimeSlotConfigName имя единственной активной конфигурации сетки слотов
const TimeSlotConfigName = "default"

// RulesSettingsName имя строки system_settings с правилами пользования
const RulesSettingsName = "usage_rules"

// DefaultTimeSlotConfig конфигурация сетки по умолчанию:
// дневные слоты по 30 минут с 09:00 до 21:00 и одна ночная сессия 21:00-09:00
var DefaultTimeSlotConfig = TimeSlotConfig{
	Name:                 TimeSlotConfigName,
	DayStart:             "09:00",
	DayEnd:               "21:00",
	DayIntervalMinutes:   30,
	NightStart:           "21:00",
	NightEnd:             "09:00",
	NightIntervalMinutes: 720,
}

// DefaultRules текст правил пользования, показываемый на экране входа
var DefaultRules = []string{
	"Book the time you need in advance; only future slots are open",
	"Past slots can be neither booked nor cancelled",
	"Day slots are 30 minutes within 09:00-21:00",
	"An overnight session 21:00-09:00 is also available",
	"Be on time and keep the instrument clean",
	"Make sure you passed the operation training before use",
	"Contact the administrator in case of problems",
}

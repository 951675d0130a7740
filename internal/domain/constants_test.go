package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownInstrument(t *testing.T) {
	assert.True(t, IsKnownInstrument("60"))
	assert.True(t, IsKnownInstrument("500"))
	assert.False(t, IsKnownInstrument("900"))
	assert.False(t, IsKnownInstrument(""))
}

func TestSettingsRowNamesDistinct(t *testing.T) {
	// Конфигурация сетки и правила живут в разных таблицах, но имена
	// строк не должны совпадать, чтобы их нельзя было перепутать
	assert.NotEqual(t, TimeSlotConfigName, RulesSettingsName)
}

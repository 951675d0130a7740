package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanUse(t *testing.T) {
	user := &User{Username: "alice", Instruments: []string{"500"}}

	assert.True(t, user.CanUse("500"))
	assert.False(t, user.CanUse("60"))
	assert.False(t, user.CanUse("900"))
}

func TestUser_AdminCanUseAllInstruments(t *testing.T) {
	admin := &User{Username: "root", IsAdmin: true}

	for _, instrument := range Instruments {
		assert.True(t, admin.CanUse(instrument))
	}
	assert.Equal(t, Instruments, admin.AllowedInstruments())
}

func TestUser_HasInstrumentIgnoresAdmin(t *testing.T) {
	admin := &User{Username: "root", IsAdmin: true, Instruments: []string{"60"}}

	assert.True(t, admin.HasInstrument("60"))
	assert.False(t, admin.HasInstrument("500"))
}

func TestBooking_IsOwnedBy(t *testing.T) {
	booking := &Booking{Username: "alice"}

	assert.True(t, booking.IsOwnedBy("alice"))
	assert.False(t, booking.IsOwnedBy("bob"))
}

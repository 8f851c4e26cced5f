package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPolicy() *BookingPolicy {
	return &BookingPolicy{
		VenueID:                    1,
		SlotDurationMinutes:        30,
		ReservationDurationMinutes: 120,
		MinPartySize:               1,
		MaxPartySize:               12,
		AdvanceBookingDays:         30,
		AdvanceBookingHours:        2,
		IsActive:                   true,
	}
}

func TestBookingPolicy_Validate(t *testing.T) {
	require.NoError(t, validPolicy().Validate())

	tests := []struct {
		name   string
		mutate func(p *BookingPolicy)
	}{
		{"slot duration too short", func(p *BookingPolicy) { p.SlotDurationMinutes = 4 }},
		{"slot duration too long", func(p *BookingPolicy) { p.SlotDurationMinutes = 481 }},
		{"reservation duration too short", func(p *BookingPolicy) { p.ReservationDurationMinutes = 14 }},
		{"reservation duration too long", func(p *BookingPolicy) { p.ReservationDurationMinutes = 481 }},
		{"zero min party size", func(p *BookingPolicy) { p.MinPartySize = 0 }},
		{"min above max", func(p *BookingPolicy) { p.MinPartySize = 10; p.MaxPartySize = 5 }},
		{"max party size above limit", func(p *BookingPolicy) { p.MaxPartySize = 101 }},
		{"negative advance days", func(p *BookingPolicy) { p.AdvanceBookingDays = -1 }},
		{"advance days above limit", func(p *BookingPolicy) { p.AdvanceBookingDays = 366 }},
		{"advance hours above limit", func(p *BookingPolicy) { p.AdvanceBookingHours = 169 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPolicy()
			tt.mutate(p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy)
		})
	}
}

func TestBookingPolicy_AllowsPartySize(t *testing.T) {
	p := validPolicy()

	assert.True(t, p.AllowsPartySize(1))
	assert.True(t, p.AllowsPartySize(12))
	assert.False(t, p.AllowsPartySize(0))
	assert.False(t, p.AllowsPartySize(13))
}

func TestDefaultBookingPolicy(t *testing.T) {
	p := DefaultBookingPolicy(7)

	require.NoError(t, p.Validate())
	assert.Equal(t, int64(7), p.VenueID)
	assert.Equal(t, DefaultSlotDurationMinutes, p.SlotDurationMinutes)
	assert.Equal(t, DefaultReservationDurationMinutes, p.ReservationDurationMinutes)
	assert.True(t, p.IsActive)
	assert.True(t, p.HasAdvanceBookingLimit())
}

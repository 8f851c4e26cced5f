package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

func TestReservation_StatusPredicates(t *testing.T) {
	tests := []struct {
		status      ReservationStatus
		blocking    bool
		occupying   bool
		cancellable bool
	}{
		{StatusPending, true, true, true},
		{StatusConfirmed, true, true, true},
		{StatusCompleted, false, true, false},
		{StatusCancelledByGuest, false, false, false},
		{StatusCancelledByVenue, false, false, false},
	}

	for _, tt := range tests {
		res := &Reservation{Status: tt.status}
		assert.Equal(t, tt.blocking, res.IsBlocking(), "IsBlocking for %s", tt.status)
		assert.Equal(t, tt.occupying, res.IsOccupying(), "IsOccupying for %s", tt.status)
		assert.Equal(t, tt.cancellable, res.CanBeCancelled(), "CanBeCancelled for %s", tt.status)
	}

	assert.True(t, (&Reservation{Status: StatusCancelledByGuest}).IsCancelled())
	assert.True(t, (&Reservation{Status: StatusCancelledByVenue}).IsCancelled())
	assert.False(t, (&Reservation{Status: StatusConfirmed}).IsCancelled())
}

func TestReservation_Interval(t *testing.T) {
	res := &Reservation{StartTime: types.TimeString("19:00"), DurationMinutes: 120}

	start, end, err := res.Interval()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("19:00"), start)
	assert.Equal(t, types.TimeString("21:00"), end)

	// Визит, заканчивающийся ровно в полночь
	res = &Reservation{StartTime: types.TimeString("22:00"), DurationMinutes: 120}
	_, end, err = res.Interval()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("24:00"), end)

	// Выход за пределы суток
	res = &Reservation{StartTime: types.TimeString("23:00"), DurationMinutes: 120}
	_, _, err = res.Interval()
	assert.Error(t, err)
}

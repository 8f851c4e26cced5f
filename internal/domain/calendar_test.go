package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

func openDay(open, close string) DaySchedule {
	o := types.TimeString(open)
	c := types.TimeString(close)
	return DaySchedule{IsOpen: true, OpenTime: &o, CloseTime: &c}
}

func TestDaySchedule_Validate(t *testing.T) {
	require.NoError(t, openDay("09:00", "23:00").Validate())

	// Закрытый день валиден без времени
	require.NoError(t, DaySchedule{IsOpen: false}.Validate())

	// Открытый день без времени работы
	assert.ErrorIs(t, DaySchedule{IsOpen: true}.Validate(), ErrInvalidSchedule)

	// Открытие не раньше закрытия
	assert.ErrorIs(t, openDay("23:00", "09:00").Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, openDay("10:00", "10:00").Validate(), ErrInvalidSchedule)

	// Некорректный формат времени
	assert.ErrorIs(t, openDay("9:00", "23:00").Validate(), ErrInvalidSchedule)
}

func TestWeekSchedule_DayFor(t *testing.T) {
	schedule := WeekSchedule{
		Tuesday: openDay("09:00", "23:00"),
	}

	// 2025-06-17 - вторник, 2025-06-16 - понедельник
	tuesday := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, schedule.DayFor(tuesday).IsOpen)
	assert.False(t, schedule.DayFor(monday).IsOpen)
}

func TestWeekSchedule_Validate(t *testing.T) {
	schedule := WeekSchedule{
		Monday:  openDay("09:00", "23:00"),
		Tuesday: openDay("23:00", "09:00"),
	}

	err := schedule.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tuesday")
}

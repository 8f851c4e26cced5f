package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

func openDay(open, close string) domain.DaySchedule {
	o := types.TimeString(open)
	c := types.TimeString(close)
	return domain.DaySchedule{IsOpen: true, OpenTime: &o, CloseTime: &c}
}

func blocking(tableID int64, start string, duration int) *domain.Reservation {
	return &domain.Reservation{
		TableID:         tableID,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(openDay("09:00", "23:00"), 30, date, now, 0)
	require.NoError(t, err)

	// Сетка 09:00..22:30 с шагом 30 минут, закрытие исключено
	require.Len(t, slots, 28)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("22:30"), slots[27])

	// Слоты строго возрастают
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestGenerateTimeSlots_ClosedDay(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(domain.DaySchedule{IsOpen: false}, 30, date, now, 0)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_AdvanceNotice(t *testing.T) {
	// Запрос на сегодня в 12:00 с уведомлением за 2 часа - слоты раньше 14:00 отсечены
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(openDay("09:00", "23:00"), 30, date, now, 2)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("14:00"), slots[0])
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(openDay("09:00", "23:00"), 30, date, now, 0)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindConflict(t *testing.T) {
	existing := []*domain.Reservation{blocking(1, "19:00", 120)} // 19:00-21:00

	// Частичное пересечение
	conflict, err := findConflict("20:00", 120, existing)
	require.NoError(t, err)
	assert.NotNil(t, conflict)

	// Граничащие интервалы не конфликтуют
	conflict, err = findConflict("21:00", 120, existing)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	conflict, err = findConflict("17:00", 120, existing)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// Пересечение на одну минуту
	conflict, err = findConflict("18:59", 120, existing)
	require.NoError(t, err)
	assert.NotNil(t, conflict)

	// Полное вложение в обе стороны
	conflict, err = findConflict("19:30", 60, existing)
	require.NoError(t, err)
	assert.NotNil(t, conflict)

	conflict, err = findConflict("18:00", 240, existing)
	require.NoError(t, err)
	assert.NotNil(t, conflict)
}

func TestCountAvailableTables(t *testing.T) {
	tables := []*domain.Table{
		{ID: 1, Capacity: 4, IsActive: true},
		{ID: 2, Capacity: 2, IsActive: true},
	}

	reservations := []*domain.Reservation{
		blocking(1, "19:00", 120),
		// Отменённая бронь стол не блокирует
		{TableID: 2, StartTime: "19:00", DurationMinutes: 120, Status: domain.StatusCancelledByGuest},
	}

	slots := countAvailableTables(
		[]types.TimeString{"18:00", "19:00", "21:00"},
		120,
		tables,
		reservations,
	)

	require.Len(t, slots, 3)

	// 18:00-20:00 пересекается с бронью на столе 1
	assert.Equal(t, 1, slots[0].AvailableTables)
	assert.Equal(t, 2, slots[0].TotalTables)

	// 19:00-21:00 точный дубль брони на столе 1
	assert.Equal(t, 1, slots[1].AvailableTables)

	// 21:00-23:00 граничит с бронью - оба стола свободны
	assert.Equal(t, 2, slots[2].AvailableTables)
}

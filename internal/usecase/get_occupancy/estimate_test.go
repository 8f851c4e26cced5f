package get_occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

func occupying(id int64, start string, duration, partySize int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		PartySize:       partySize,
		Status:          status,
	}
}

func TestEstimateOccupancy_GreedyPacking(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	tables := []*domain.Table{
		{ID: 1, Capacity: 6},
		{ID: 2, Capacity: 2},
		{ID: 3, Capacity: 4},
		{ID: 4, Capacity: 2},
	}

	// Спрос на 19:30: 4 + 3 = 7 гостей
	reservations := []*domain.Reservation{
		occupying(1, "19:00", 120, 4, domain.StatusConfirmed),
		occupying(2, "18:00", 120, 3, domain.StatusCompleted),
		// Вне момента
		occupying(3, "21:00", 120, 2, domain.StatusConfirmed),
		// Отменённая не учитывается
		occupying(4, "19:00", 120, 6, domain.StatusCancelledByVenue),
	}

	snapshot := estimateOccupancy(1, date, "19:30", tables, reservations)

	// Жадная упаковка 7 гостей по вместимостям [2, 2, 4, 6]: 2+2+4 >= 7
	assert.Equal(t, 4, snapshot.TotalTables)
	assert.Equal(t, 3, snapshot.OccupiedTables)
	assert.Equal(t, 1, snapshot.AvailableTables)
	assert.Equal(t, 14, snapshot.TotalCapacity)
	assert.Equal(t, 7, snapshot.OccupiedCapacity)
	assert.Equal(t, 7, snapshot.AvailableCapacity)
	assert.InDelta(t, 0.75, snapshot.OccupancyRate, 1e-9)
	assert.False(t, snapshot.IsFull())
	assert.ElementsMatch(t, []int64{1, 2}, snapshot.ContributingReservations)
}

func TestEstimateOccupancy_IntervalBoundaries(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	tables := []*domain.Table{{ID: 1, Capacity: 4}}
	reservations := []*domain.Reservation{
		occupying(1, "19:00", 120, 2, domain.StatusConfirmed), // 19:00-21:00
	}

	// Момент начала включён
	snapshot := estimateOccupancy(1, date, "19:00", tables, reservations)
	assert.Equal(t, 1, snapshot.OccupiedTables)

	// Момент окончания исключён
	snapshot = estimateOccupancy(1, date, "21:00", tables, reservations)
	assert.Equal(t, 0, snapshot.OccupiedTables)

	// До начала
	snapshot = estimateOccupancy(1, date, "18:59", tables, reservations)
	assert.Equal(t, 0, snapshot.OccupiedTables)
}

func TestEstimateOccupancy_Full(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	tables := []*domain.Table{
		{ID: 1, Capacity: 2},
		{ID: 2, Capacity: 2},
	}
	reservations := []*domain.Reservation{
		occupying(1, "19:00", 120, 4, domain.StatusConfirmed),
	}

	snapshot := estimateOccupancy(1, date, "19:30", tables, reservations)

	assert.Equal(t, 2, snapshot.OccupiedTables)
	assert.True(t, snapshot.IsFull())
	assert.InDelta(t, 1.0, snapshot.OccupancyRate, 1e-9)
}

func TestEstimateOccupancy_DemandExceedsCapacity(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	tables := []*domain.Table{
		{ID: 1, Capacity: 2},
		{ID: 2, Capacity: 2},
	}
	reservations := []*domain.Reservation{
		occupying(1, "19:00", 120, 6, domain.StatusConfirmed),
	}

	snapshot := estimateOccupancy(1, date, "19:30", tables, reservations)

	// Спрос больше общей вместимости: занятая вместимость отражает спрос,
	// но занятых столов не больше, чем столов всего
	assert.Equal(t, 6, snapshot.OccupiedCapacity)
	assert.Equal(t, 4, snapshot.TotalCapacity)
	assert.Equal(t, -2, snapshot.AvailableCapacity)
	assert.Equal(t, 2, snapshot.OccupiedTables)
	assert.Equal(t, 2, snapshot.TotalTables)
	assert.True(t, snapshot.IsFull())
}

func TestEstimateOccupancy_NoTables(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	snapshot := estimateOccupancy(1, date, "19:30", nil, nil)

	require.NotNil(t, snapshot)
	assert.Equal(t, 0, snapshot.TotalTables)
	assert.Zero(t, snapshot.OccupancyRate)
	assert.False(t, snapshot.IsFull())
}

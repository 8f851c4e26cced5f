package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
)

func TestOccupancyCache_SetGet(t *testing.T) {
	c := NewOccupancyCache(time.Minute)
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	snapshot := &domain.OccupancySnapshot{VenueID: 1, Date: date, Time: "19:00", OccupiedTables: 3}
	c.Set(1, date, "19:00", snapshot)

	got, ok := c.Get(1, date, "19:00")
	require.True(t, ok)
	assert.Equal(t, 3, got.OccupiedTables)

	// Другой бакет пуст
	_, ok = c.Get(1, date, "20:00")
	assert.False(t, ok)

	// Другое заведение пусто
	_, ok = c.Get(2, date, "19:00")
	assert.False(t, ok)
}

func TestOccupancyCache_InvalidateDay(t *testing.T) {
	c := NewOccupancyCache(time.Minute)
	day := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	c.Set(1, day, "19:00", &domain.OccupancySnapshot{VenueID: 1})
	c.Set(1, day, "20:00", &domain.OccupancySnapshot{VenueID: 1})
	c.Set(1, otherDay, "19:00", &domain.OccupancySnapshot{VenueID: 1})
	c.Set(2, day, "19:00", &domain.OccupancySnapshot{VenueID: 2})

	c.InvalidateDay(1, day)

	// Все бакеты дня удалены
	_, ok := c.Get(1, day, "19:00")
	assert.False(t, ok)
	_, ok = c.Get(1, day, "20:00")
	assert.False(t, ok)

	// Другой день и другое заведение не затронуты
	_, ok = c.Get(1, otherDay, "19:00")
	assert.True(t, ok)
	_, ok = c.Get(2, day, "19:00")
	assert.True(t, ok)
}

func TestOccupancyCache_TTLExpiry(t *testing.T) {
	c := NewOccupancyCache(10 * time.Millisecond)
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	c.Set(1, date, "19:00", &domain.OccupancySnapshot{VenueID: 1})
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(1, date, "19:00")
	assert.False(t, ok)
}

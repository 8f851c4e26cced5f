package get_occupancy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeReservationRepo) GetByVenueWithFilter(ctx context.Context, filter domain.VenueReservationsFilter) ([]*domain.Reservation, error) {
	f.calls++
	return f.reservations, f.err
}

type fakeTableRepo struct {
	tables []*domain.Table
	err    error
}

func (f *fakeTableRepo) ListByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Table, error) {
	return f.tables, f.err
}

type fakeVenueClient struct {
	venue *venueservice.Venue
	err   error
}

func (f *fakeVenueClient) GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error) {
	return f.venue, f.err
}

type mapCache struct {
	entries map[string]*domain.OccupancySnapshot
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*domain.OccupancySnapshot)}
}

func (c *mapCache) key(venueID int64, date time.Time, timeOfDay types.TimeString) string {
	return fmt.Sprintf("%d:%s:%s", venueID, date.Format(domain.DateFormat), timeOfDay)
}

func (c *mapCache) Get(venueID int64, date time.Time, timeOfDay types.TimeString) (*domain.OccupancySnapshot, bool) {
	s, ok := c.entries[c.key(venueID, date, timeOfDay)]
	return s, ok
}

func (c *mapCache) Set(venueID int64, date time.Time, timeOfDay types.TimeString, snapshot *domain.OccupancySnapshot) {
	c.entries[c.key(venueID, date, timeOfDay)] = snapshot
}

func TestExecute_ComputesAndCaches(t *testing.T) {
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	// Компания из двух гостей помещается за маленький стол -
	// занят один стол из двух
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		occupying(1, "19:00", 120, 2, domain.StatusConfirmed),
	}}
	cache := newMapCache()

	uc := NewUseCase(
		resRepo,
		&fakeTableRepo{tables: []*domain.Table{{ID: 1, Capacity: 4}, {ID: 2, Capacity: 2}}},
		&fakeVenueClient{venue: &venueservice.Venue{ID: 1, IsActive: true}},
		cache,
		nopLogger{},
	)

	req := &Request{VenueID: 1, Date: date, TimeOfDay: "19:30"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.FromCache)
	assert.Equal(t, 2, resp.TotalTables)
	assert.Equal(t, 1, resp.OccupiedTables)
	assert.Equal(t, 1, resp.AvailableTables)
	assert.Equal(t, 2, resp.OccupiedCapacity)
	assert.Equal(t, 4, resp.AvailableCapacity)
	assert.InDelta(t, 0.5, resp.OccupancyRate, 1e-9)
	assert.Equal(t, 1, resRepo.calls)

	// Повторный запрос обслуживается из кеша без похода в репозиторий
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.FromCache)
	assert.Equal(t, 1, resp.OccupiedTables)
	assert.Equal(t, 1, resRepo.calls)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{},
		&fakeTableRepo{},
		&fakeVenueClient{err: venueservice.ErrVenueNotFound},
		newMapCache(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "19:30",
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeTableRepo{}, &fakeVenueClient{}, newMapCache(), nopLogger{})

	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: date, TimeOfDay: "19:30"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1, TimeOfDay: "19:30"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1, Date: date, TimeOfDay: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoFailureIsInternalError(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{err: assert.AnError},
		&fakeTableRepo{},
		&fakeVenueClient{venue: &venueservice.Venue{ID: 1, IsActive: true}},
		newMapCache(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "19:30",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

package validate_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	tableRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/table"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByVenueWithFilter(ctx context.Context, filter domain.VenueReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeTableRepo struct {
	table *domain.Table
	err   error
}

func (f *fakeTableRepo) GetByID(ctx context.Context, tableID int64) (*domain.Table, error) {
	return f.table, f.err
}

type fakeConfigRepo struct {
	policy      *domain.BookingPolicy
	policyErr   error
	schedule    domain.WeekSchedule
	scheduleErr error
}

func (f *fakeConfigRepo) GetPolicy(ctx context.Context, venueID int64) (*domain.BookingPolicy, error) {
	return f.policy, f.policyErr
}

func (f *fakeConfigRepo) GetWeekSchedule(ctx context.Context, venueID int64) (domain.WeekSchedule, error) {
	return f.schedule, f.scheduleErr
}

type fakeVenueClient struct {
	venue *venueservice.Venue
	err   error
}

func (f *fakeVenueClient) GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error) {
	return f.venue, f.err
}

func openDay(open, close string) domain.DaySchedule {
	o := types.TimeString(open)
	c := types.TimeString(close)
	return domain.DaySchedule{IsOpen: true, OpenTime: &o, CloseTime: &c}
}

// Фикстура: вторник 2025-06-17, заведение открыто 09:00-23:00,
// текущий момент - за день до визита
type fixture struct {
	resRepo *fakeReservationRepo
	tblRepo *fakeTableRepo
	cfgRepo *fakeConfigRepo
	venues  *fakeVenueClient
	now     time.Time
	req     *Request
}

func newFixture() *fixture {
	return &fixture{
		resRepo: &fakeReservationRepo{},
		tblRepo: &fakeTableRepo{table: &domain.Table{ID: 5, VenueID: 1, Capacity: 4, IsActive: true}},
		cfgRepo: &fakeConfigRepo{
			policy:   domain.DefaultBookingPolicy(1),
			schedule: domain.WeekSchedule{Tuesday: openDay("09:00", "23:00")},
		},
		venues: &fakeVenueClient{venue: &venueservice.Venue{ID: 1, IsActive: true}},
		now:    time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC),
		req: &Request{
			UserID:    10,
			VenueID:   1,
			TableID:   5,
			Date:      time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
			StartTime: "19:00",
			PartySize: 2,
		},
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.resRepo, f.tblRepo, f.cfgRepo, f.venues, nopLogger{})
	uc.timeProvider = fixedTime{f.now}
	return uc
}

func TestExecute_Valid(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Reason)
	assert.Nil(t, resp.ConflictingReservationID)
}

func TestExecute_ConflictingReservation(t *testing.T) {
	f := newFixture()
	// Существующая бронь 19:00-21:00 на том же столе
	f.resRepo.reservations = []*domain.Reservation{{
		ID:              42,
		TableID:         5,
		StartTime:       "19:00",
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
	}}

	// Кандидат 20:00-22:00 пересекается
	f.req.StartTime = "20:00"
	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonTableUnavailable, resp.Reason)
	require.NotNil(t, resp.ConflictingReservationID)
	assert.Equal(t, int64(42), *resp.ConflictingReservationID)

	// Кандидат 21:00-23:00 граничит с бронью - допустим
	f.req.StartTime = "21:00"
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	// Пересечение на одну минуту
	f.req.StartTime = "18:59"
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.resRepo.reservations = []*domain.Reservation{{
		ID:              42,
		TableID:         5,
		StartTime:       "19:00",
		DurationMinutes: 120,
		Status:          domain.StatusCancelledByGuest,
	}}

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
}

func TestExecute_VenueClosed(t *testing.T) {
	f := newFixture()
	// Среда - выходной в расписании фикстуры
	f.req.Date = time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonVenueClosed, resp.Reason)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture()

	// До открытия
	f.req.StartTime = "08:30"
	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonOutsideBusinessHours, resp.Reason)

	// Ровно в момент закрытия - начинать нельзя
	f.req.StartTime = "23:00"
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)

	// Ровно в момент открытия - можно
	f.req.StartTime = "09:00"
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
}

func TestExecute_BookingsDisabled(t *testing.T) {
	f := newFixture()
	f.cfgRepo.policy.IsActive = false

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonBookingsDisabled, resp.Reason)
}

func TestExecute_PartySizeOutOfBounds(t *testing.T) {
	f := newFixture()
	f.req.PartySize = 13 // выше дефолтного максимума

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonPartySizeOutOfBounds, resp.Reason)
}

func TestExecute_BeyondAdvanceWindow(t *testing.T) {
	f := newFixture()
	f.cfgRepo.policy.AdvanceBookingDays = 7
	f.req.Date = f.now.AddDate(0, 0, 8)

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonBeyondAdvanceWindow, resp.Reason)
}

func TestExecute_TooLateToBook(t *testing.T) {
	f := newFixture()

	// Дата в прошлом: причина "слишком поздно" даже если этот день недели
	// выходной по расписанию (воскресенье закрыто в фикстуре)
	f.req.Date = f.now.AddDate(0, 0, -1)
	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonTooLateToBook, resp.Reason)

	// Недостаточный запас до начала визита: визит сегодня в 13:00,
	// уведомление за 2 часа, сейчас 12:00
	f = newFixture()
	f.cfgRepo.policy.AdvanceBookingHours = 2
	f.cfgRepo.schedule.Monday = openDay("09:00", "23:00")
	f.req.Date = f.now
	f.req.StartTime = "13:00"

	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonTooLateToBook, resp.Reason)

	// В 14:00 запас ровно выдержан
	f.req.StartTime = "14:00"
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
}

func TestExecute_TableChecks(t *testing.T) {
	f := newFixture()
	f.tblRepo.err = tableRepo.ErrTableNotFound
	f.tblRepo.table = nil

	resp, err := f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonTableUnknown, resp.Reason)

	// Стол чужого заведения
	f = newFixture()
	f.tblRepo.table.VenueID = 2
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.Equal(t, ReasonTableUnknown, resp.Reason)

	// Деактивированный стол
	f = newFixture()
	f.tblRepo.table.IsActive = false
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.Equal(t, ReasonTableUnknown, resp.Reason)

	// Стол не вмещает компанию
	f = newFixture()
	f.req.PartySize = 5
	resp, err = f.useCase().Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.Equal(t, ReasonTableTooSmall, resp.Reason)
}

func TestExecute_VenueErrors(t *testing.T) {
	f := newFixture()
	f.venues.venue = nil
	f.venues.err = venueservice.ErrVenueNotFound

	_, err := f.useCase().Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrVenueNotFound)

	f = newFixture()
	f.venues.venue.IsActive = false
	_, err = f.useCase().Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrVenueInactive)
}

func TestExecute_RepoFailureIsInternalError(t *testing.T) {
	f := newFixture()
	f.resRepo.err = assert.AnError

	_, err := f.useCase().Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()
	f.req.PartySize = 0

	_, err := f.useCase().Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package get_date_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

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

func openDay(open, close string) domain.DaySchedule {
	o := types.TimeString(open)
	c := types.TimeString(close)
	return domain.DaySchedule{IsOpen: true, OpenTime: &o, CloseTime: &c}
}

// Неделя, открытая каждый день
func openWeek() domain.WeekSchedule {
	day := openDay("09:00", "23:00")
	return domain.WeekSchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func newTestUseCase(cfg *fakeConfigRepo, now time.Time) *UseCase {
	uc := NewUseCase(cfg, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_AdvanceWindowBounds(t *testing.T) {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	policy := domain.DefaultBookingPolicy(1)
	policy.AdvanceBookingDays = 7

	uc := newTestUseCase(&fakeConfigRepo{policy: policy, schedule: openWeek()}, now)

	// Сегодня и граница окна включительно доступны
	for _, offset := range []int{0, 1, 7} {
		resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: now.AddDate(0, 0, offset)})
		require.NoError(t, err)
		assert.True(t, resp.Available, "offset %d", offset)
		assert.Empty(t, resp.Reason)
	}

	// За границей окна
	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: now.AddDate(0, 0, 8)})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonBeyondWindow, resp.Reason)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeConfigRepo{policy: domain.DefaultBookingPolicy(1), schedule: openWeek()}, now)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: now.AddDate(0, 0, -1)})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonDateInPast, resp.Reason)
}

func TestExecute_ClosedWeekday(t *testing.T) {
	// 2025-06-16 - понедельник; открыт только вторник
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeConfigRepo{
		policy:   domain.DefaultBookingPolicy(1),
		schedule: domain.WeekSchedule{Tuesday: openDay("09:00", "23:00")},
	}, now)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: now})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonVenueClosed, resp.Reason)

	resp, err = uc.Execute(context.Background(), &Request{VenueID: 1, Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_MissingScheduleMeansClosed(t *testing.T) {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeConfigRepo{
		policy:      domain.DefaultBookingPolicy(1),
		scheduleErr: configRepo.ErrScheduleNotFound,
	}, now)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: now})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonVenueClosed, resp.Reason)
}

func TestExecute_UnlimitedAdvanceWindow(t *testing.T) {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	policy := domain.DefaultBookingPolicy(1)
	policy.AdvanceBookingDays = 0

	uc := newTestUseCase(&fakeConfigRepo{policy: policy, schedule: openWeek()}, now)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: now.AddDate(1, 0, 0)})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeConfigRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package venueconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	"github.com/m04kA/TRP-AvailabilityService/internal/service/venueconfig/models"
	"github.com/m04kA/TRP-AvailabilityService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeConfigRepo хранит политику и расписание в памяти
type fakeConfigRepo struct {
	policy   *domain.BookingPolicy
	schedule *domain.WeekSchedule
}

func (f *fakeConfigRepo) GetPolicy(ctx context.Context, venueID int64) (*domain.BookingPolicy, error) {
	if f.policy == nil {
		return nil, configRepo.ErrPolicyNotFound
	}
	return f.policy, nil
}

func (f *fakeConfigRepo) GetWeekSchedule(ctx context.Context, venueID int64) (domain.WeekSchedule, error) {
	if f.schedule == nil {
		return domain.WeekSchedule{}, configRepo.ErrScheduleNotFound
	}
	return *f.schedule, nil
}

func (f *fakeConfigRepo) UpsertPolicy(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	f.policy = policy
	return policy, nil
}

func (f *fakeConfigRepo) ReplaceWeekSchedule(ctx context.Context, venueID int64, schedule domain.WeekSchedule) error {
	f.schedule = &schedule
	return nil
}

type fakeVenueClient struct {
	venue *venueservice.Venue
	err   error
}

func (f *fakeVenueClient) GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error) {
	return f.venue, f.err
}

func managedVenue() *venueservice.Venue {
	return &venueservice.Venue{ID: 1, IsActive: true, ManagerIDs: []int64{77}}
}

func TestGet_DefaultsWhenUnconfigured(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.VenueID)
	assert.True(t, resp.Policy.IsDefault)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.Policy.SlotDurationMinutes)

	// Без расписания все дни закрыты
	assert.False(t, resp.Schedule.Monday.IsOpen)
	assert.False(t, resp.Schedule.Sunday.IsOpen)
}

func TestGet_VenueNotFound(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeVenueClient{err: venueservice.ErrVenueNotFound}, nopLogger{})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestUpdate_PartialPolicy(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	// Частичное обновление поверх дефолтной политики
	resp, err := svc.Update(context.Background(), 1, &models.UpdateConfigRequest{
		UserID: 77,
		Policy: &models.UpdatePolicyBody{
			MaxPartySize:        ptr.Ptr(8),
			AdvanceBookingHours: ptr.Ptr(3),
		},
	})
	require.NoError(t, err)

	assert.False(t, resp.Policy.IsDefault)
	assert.Equal(t, 8, resp.Policy.MaxPartySize)
	assert.Equal(t, 3, resp.Policy.AdvanceBookingHours)
	// Непереданные поля остались дефолтными
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.Policy.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultMinPartySize, resp.Policy.MinPartySize)
}

func TestUpdate_Schedule(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateConfigRequest{
		UserID: 77,
		Schedule: &models.WeekScheduleBody{
			Tuesday: models.DayScheduleBody{
				IsOpen:    true,
				OpenTime:  ptr.Ptr("09:00"),
				CloseTime: ptr.Ptr("23:00"),
			},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Schedule.Tuesday.IsOpen)
	require.NotNil(t, resp.Schedule.Tuesday.OpenTime)
	assert.Equal(t, "09:00", *resp.Schedule.Tuesday.OpenTime)
	assert.False(t, resp.Schedule.Monday.IsOpen)
}

func TestUpdate_InvalidPolicyRejected(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateConfigRequest{
		UserID: 77,
		Policy: &models.UpdatePolicyBody{
			MinPartySize: ptr.Ptr(10),
			MaxPartySize: ptr.Ptr(5),
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.policy)
}

func TestUpdate_InvalidScheduleRejected(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	// Открытие позже закрытия
	_, err := svc.Update(context.Background(), 1, &models.UpdateConfigRequest{
		UserID: 77,
		Schedule: &models.WeekScheduleBody{
			Friday: models.DayScheduleBody{
				IsOpen:    true,
				OpenTime:  ptr.Ptr("23:00"),
				CloseTime: ptr.Ptr("09:00"),
			},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Некорректный формат времени
	_, err = svc.Update(context.Background(), 1, &models.UpdateConfigRequest{
		UserID: 77,
		Schedule: &models.WeekScheduleBody{
			Friday: models.DayScheduleBody{
				IsOpen:    true,
				OpenTime:  ptr.Ptr("9am"),
				CloseTime: ptr.Ptr("23:00"),
			},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.schedule)
}

func TestUpdate_AccessDenied(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateConfigRequest{
		UserID: 99,
		Policy: &models.UpdatePolicyBody{MaxPartySize: ptr.Ptr(8)},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_EmptyRequestRejected(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeVenueClient{venue: managedVenue()}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateConfigRequest{UserID: 77})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

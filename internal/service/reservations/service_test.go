package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	"github.com/m04kA/TRP-AvailabilityService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	byID         *domain.Reservation
	byIDErr      error
	list         []*domain.Reservation
	listErr      error
	cancelledID  int64
	cancelStatus domain.ReservationStatus
	cancelReason string
	cancelErr    error
	updatedID    int64
	updateStatus domain.ReservationStatus
	updateErr    error
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.byID, f.byIDErr
}

func (f *fakeReservationRepo) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return f.list, f.listErr
}

func (f *fakeReservationRepo) GetByVenueWithFilter(ctx context.Context, filter domain.VenueReservationsFilter) ([]*domain.Reservation, error) {
	return f.list, f.listErr
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	f.updatedID = id
	f.updateStatus = status
	return f.updateErr
}

func (f *fakeReservationRepo) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	f.cancelledID = id
	f.cancelStatus = status
	f.cancelReason = reason
	return f.cancelErr
}

type fakeVenueClient struct {
	venue *venueservice.Venue
	err   error
}

func (f *fakeVenueClient) GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error) {
	return f.venue, f.err
}

type recordingCache struct {
	invalidated int
}

func (c *recordingCache) InvalidateDay(venueID int64, date time.Time) {
	c.invalidated++
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              42,
		VenueID:         1,
		TableID:         5,
		UserID:          10,
		PartySize:       2,
		Date:            time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		StartTime:       "19:00",
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
	}
}

// Заведение с менеджером user=77
func managedVenue() *venueservice.Venue {
	return &venueservice.Venue{ID: 1, IsActive: true, ManagerIDs: []int64{77}}
}

func newService(repo *fakeReservationRepo, venues *fakeVenueClient, cache *recordingCache) *Service {
	return NewService(repo, venues, cache, nopLogger{})
}

func TestGetByID_OwnerAccess(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{byID: testReservation()},
		&fakeVenueClient{venue: managedVenue()},
		&recordingCache{},
	)

	resp, err := svc.GetByID(context.Background(), 42, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "19:00", resp.StartTime)
}

func TestGetByID_ManagerAccess(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{byID: testReservation()},
		&fakeVenueClient{venue: managedVenue()},
		&recordingCache{},
	)

	resp, err := svc.GetByID(context.Background(), 42, 77)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{byID: testReservation()},
		&fakeVenueClient{venue: managedVenue()},
		&recordingCache{},
	)

	_, err := svc.GetByID(context.Background(), 42, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{byIDErr: reservationRepo.ErrReservationNotFound},
		&fakeVenueClient{},
		&recordingCache{},
	)

	_, err := svc.GetByID(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := &fakeReservationRepo{byID: testReservation()}
	cache := &recordingCache{}
	svc := newService(repo, &fakeVenueClient{venue: managedVenue()}, cache)

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{
		UserID:             10,
		CancellationReason: "plans changed",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByGuest, repo.cancelStatus)
	assert.Equal(t, "plans changed", repo.cancelReason)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCancel_ByManager(t *testing.T) {
	repo := &fakeReservationRepo{byID: testReservation()}
	cache := &recordingCache{}
	svc := newService(repo, &fakeVenueClient{venue: managedVenue()}, cache)

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{UserID: 77})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByVenue, repo.cancelStatus)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeReservationRepo{byID: testReservation()}
	cache := &recordingCache{}
	svc := newService(repo, &fakeVenueClient{venue: managedVenue()}, cache)

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
	assert.Zero(t, cache.invalidated)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	res := testReservation()
	res.Status = domain.StatusCancelledByGuest
	svc := newService(&fakeReservationRepo{byID: res}, &fakeVenueClient{venue: managedVenue()}, &recordingCache{})

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	res := testReservation()
	res.Status = domain.StatusCompleted
	svc := newService(&fakeReservationRepo{byID: res}, &fakeVenueClient{venue: managedVenue()}, &recordingCache{})

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_ByManager(t *testing.T) {
	repo := &fakeReservationRepo{byID: testReservation()}
	cache := &recordingCache{}
	svc := newService(repo, &fakeVenueClient{venue: managedVenue()}, cache)

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 77,
		Status: "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.updatedID)
	assert.Equal(t, domain.StatusCompleted, repo.updateStatus)
	assert.Equal(t, 1, cache.invalidated)
}

func TestUpdateStatus_NotManager(t *testing.T) {
	repo := &fakeReservationRepo{byID: testReservation()}
	svc := newService(repo, &fakeVenueClient{venue: managedVenue()}, &recordingCache{})

	// Даже владелец бронирования не может менять статус
	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 10,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.updatedID)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{byID: testReservation()},
		&fakeVenueClient{venue: managedVenue()},
		&recordingCache{},
	)

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 77,
		Status: "no_show",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserReservations(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{list: []*domain.Reservation{testReservation()}},
		&fakeVenueClient{},
		&recordingCache{},
	)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(42), resp.Reservations[0].ID)

	// Некорректный статус в фильтре
	bad := "whatever"
	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 10, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetVenueReservations_ManagerOnly(t *testing.T) {
	svc := newService(
		&fakeReservationRepo{list: []*domain.Reservation{testReservation()}},
		&fakeVenueClient{venue: managedVenue()},
		&recordingCache{},
	)

	resp, err := svc.GetVenueReservations(context.Background(), &models.GetVenueReservationsRequest{
		VenueID: 1,
		UserID:  77,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	_, err = svc.GetVenueReservations(context.Background(), &models.GetVenueReservationsRequest{
		VenueID: 1,
		UserID:  99,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

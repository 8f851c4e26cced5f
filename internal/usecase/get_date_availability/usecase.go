package get_date_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
)

// UseCase use case проверки доступности даты для бронирования
type UseCase struct {
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configRepo ConfigRepository, logger Logger) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности даты
// Дата доступна, если today <= date <= today + advanceBookingDays
// и день недели у заведения рабочий.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// Политика (для горизонта бронирования)
	policy, err := uc.configRepo.GetPolicy(ctx, req.VenueID)
	if err != nil && !errors.Is(err, configRepo.ErrPolicyNotFound) {
		uc.logger.Error("GetDateAvailability: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}
	if policy == nil {
		policy = domain.DefaultBookingPolicy(req.VenueID)
	}

	// Расписание работы; отсутствие расписания означает "всегда закрыто"
	schedule, err := uc.configRepo.GetWeekSchedule(ctx, req.VenueID)
	if err != nil && !errors.Is(err, configRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetDateAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	available, reason := isDateAvailable(req.Date, now, policy.AdvanceBookingDays, schedule)

	uc.logger.Info("GetDateAvailability: venue=%d, date=%s, available=%t",
		req.VenueID, req.Date.Format(domain.DateFormat), available)

	return &Response{
		VenueID:   req.VenueID,
		Date:      req.Date,
		Available: available,
		Reason:    reason,
	}, nil
}

// isDateAvailable проверяет доступность даты: окно бронирования и рабочий день
func isDateAvailable(date, now time.Time, advanceBookingDays int, schedule domain.WeekSchedule) (bool, string) {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(today) {
		return false, ReasonDateInPast
	}

	// advanceBookingDays = 0 означает отсутствие горизонта
	if advanceBookingDays > 0 {
		maxDate := today.AddDate(0, 0, advanceBookingDays)
		if dateOnly.After(maxDate) {
			return false, ReasonBeyondWindow
		}
	}

	if !schedule.DayFor(date).IsOpen {
		return false, ReasonVenueClosed
	}

	return true, ""
}

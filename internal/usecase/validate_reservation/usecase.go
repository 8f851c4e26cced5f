package validate_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	tableRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/table"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	venueClient "github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
)

// UseCase use case валидации запроса на бронирование без его создания
//
// Все проверки читают актуальное состояние, поэтому положительный результат -
// это снимок на момент запроса, а не резервирование: к моменту создания
// бронирования стол может быть уже занят.
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	configRepo      ConfigRepository
	venueClient     VenueServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	configRepo ConfigRepository,
	venueClient VenueServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		configRepo:      configRepo,
		venueClient:     venueClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет валидацию бронирования
// Проверки идут от дешевых к дорогим и завершаются на первом нарушении:
// политика → календарь → стол → пересечения с существующими бронированиями.
// Дата проверяется до календаря: для прошедшей даты причина "слишком поздно"
// полезнее, чем выходной день недели.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateReservation: venue=%d, table=%d, date=%s, start=%s, party=%d",
		req.VenueID, req.TableID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем заведение в каталоге
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("ValidateReservation: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("ValidateReservation: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsActive {
		uc.logger.Warn("ValidateReservation: venue id=%d is inactive", req.VenueID)
		return nil, ErrVenueInactive
	}

	// 4. Получаем политику бронирования
	policy, err := uc.configRepo.GetPolicy(ctx, req.VenueID)
	if err != nil && !errors.Is(err, configRepo.ErrPolicyNotFound) {
		uc.logger.Error("ValidateReservation: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}
	if policy == nil {
		policy = domain.DefaultBookingPolicy(req.VenueID)
	}

	if !policy.IsActive {
		return invalidResponse(ReasonBookingsDisabled), nil
	}

	// 5. Политика: размер компании и горизонт бронирования
	if !policy.AllowsPartySize(req.PartySize) {
		return invalidResponse(ReasonPartySizeOutOfBounds), nil
	}

	if !withinAdvanceWindow(req.Date, now, policy.AdvanceBookingDays) {
		if isDateInPast(req.Date, now) {
			return invalidResponse(ReasonTooLateToBook), nil
		}
		return invalidResponse(ReasonBeyondAdvanceWindow), nil
	}

	// 6. Календарь: заведение должно работать в этот день,
	// визит должен начинаться в рабочие часы
	schedule, err := uc.configRepo.GetWeekSchedule(ctx, req.VenueID)
	if err != nil && !errors.Is(err, configRepo.ErrScheduleNotFound) {
		uc.logger.Error("ValidateReservation: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	day := schedule.DayFor(req.Date)
	if !day.IsOpen {
		return invalidResponse(ReasonVenueClosed), nil
	}

	if !withinBusinessHours(req.StartTime, day) {
		return invalidResponse(ReasonOutsideBusinessHours), nil
	}

	meetsNotice, err := meetsAdvanceNotice(req.StartTime, req.Date, now, policy.AdvanceBookingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check advance notice: %v", ErrInternal, err)
	}
	if !meetsNotice {
		return invalidResponse(ReasonTooLateToBook), nil
	}

	// 7. Стол: должен существовать, принадлежать заведению, быть активным
	// и вмещать компанию
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return invalidResponse(ReasonTableUnknown), nil
		}
		uc.logger.Error("ValidateReservation: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	if table.VenueID != req.VenueID || !table.IsActive {
		return invalidResponse(ReasonTableUnknown), nil
	}

	if !table.CanSeat(req.PartySize) {
		return invalidResponse(ReasonTableTooSmall), nil
	}

	// 8. Пересечения с существующими бронированиями этого стола на эту дату
	filter := domain.VenueReservationsFilter{
		VenueID:         req.VenueID,
		TableID:         &req.TableID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ValidateReservation: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	conflict, err := findConflict(req.StartTime, policy.ReservationDurationMinutes, reservations)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Info("ValidateReservation: conflict with reservation id=%d", conflict.ID)
		return conflictResponse(conflict.ID), nil
	}

	return validResponse(), nil
}

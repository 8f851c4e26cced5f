package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	venueClient "github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
)

// UseCase use case для получения доступных слотов для бронирования стола
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: venue=%d, table=%v, date=%s",
		req.VenueID, req.TableID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем заведение в каталоге
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsActive {
		uc.logger.Warn("GetAvailableSlots: venue id=%d is inactive", req.VenueID)
		return nil, ErrVenueInactive
	}

	// 4. Получаем политику бронирования
	policy, err := uc.configRepo.GetPolicy(ctx, req.VenueID)
	if err != nil && !errors.Is(err, configRepo.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// Если политика не настроена, используем дефолтные значения
	if policy == nil {
		policy = domain.DefaultBookingPolicy(req.VenueID)
		uc.logger.Info("GetAvailableSlots: using default policy for venue=%d", req.VenueID)
	}

	// Выключенная политика означает, что онлайн-бронирование недоступно
	if !policy.IsActive {
		uc.logger.Info("GetAvailableSlots: bookings disabled for venue=%d", req.VenueID)
		return uc.emptyResponse(req), nil
	}

	// 5. Валидация даты с учетом горизонта бронирования
	if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем расписание работы; заведение без расписания считается закрытым
	schedule, err := uc.configRepo.GetWeekSchedule(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, configRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableSlots: venue=%d has no schedule, treating as closed", req.VenueID)
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	day := schedule.DayFor(req.Date)
	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: venue=%d is closed on %s", req.VenueID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 7. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(day, policy.SlotDurationMinutes, req.Date, now, policy.AdvanceBookingHours)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 8. Получаем активные столы заведения
	tables, err := uc.tableRepo.ListByVenue(ctx, req.VenueID, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// Если запрошен конкретный стол, ограничиваемся им
	if req.TableID != nil {
		tables = filterTable(tables, *req.TableID)
		if len(tables) == 0 {
			uc.logger.Warn("GetAvailableSlots: table id=%d not found in venue=%d", *req.TableID, req.VenueID)
			return nil, ErrTableNotFound
		}
	}

	// 9. Получаем бронирования на эту дату
	filter := domain.VenueReservationsFilter{
		VenueID:         req.VenueID,
		TableID:         req.TableID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	reservations, err := uc.reservationRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 10. Вычисляем доступность столов для каждого слота
	slots := countAvailableTables(timeSlots, policy.ReservationDurationMinutes, tables, reservations)

	uc.logger.Info("GetAvailableSlots: generated %d slots for venue=%d, date=%s",
		len(slots), req.VenueID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		VenueID: req.VenueID,
		Slots:   slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:    req.Date,
		VenueID: req.VenueID,
		Slots:   []Slot{},
	}
}

func filterTable(tables []*domain.Table, tableID int64) []*domain.Table {
	for _, t := range tables {
		if t.ID == tableID {
			return []*domain.Table{t}
		}
	}
	return nil
}

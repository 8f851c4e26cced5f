package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/table"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	venueClient "github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	configRepo      ConfigRepository
	venueClient     VenueServiceClient
	txManager       TransactionManager
	occupancyCache  OccupancyCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	configRepo ConfigRepository,
	venueClient VenueServiceClient,
	txManager TransactionManager,
	occupancyCache OccupancyCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		configRepo:      configRepo,
		venueClient:     venueClient,
		txManager:       txManager,
		occupancyCache:  occupancyCache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости стола и вставка происходят атомарно, одновременные
// запросы на один стол и время не могут пройти проверку оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, venue=%d, table=%d, date=%s, time=%s, party=%d",
		req.UserID, req.VenueID, req.TableID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем заведение в каталоге
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("CreateReservation: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateReservation: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsActive {
		uc.logger.Warn("CreateReservation: venue id=%d is inactive", req.VenueID)
		return nil, ErrVenueInactive
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем политику бронирования
		policy, err := uc.configRepo.GetPolicy(txCtx, req.VenueID)
		if err != nil && !errors.Is(err, configRepo.ErrPolicyNotFound) {
			uc.logger.Error("CreateReservation: failed to get policy: %v", err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		// Если политика не настроена, используем дефолтные значения
		if policy == nil {
			policy = domain.DefaultBookingPolicy(req.VenueID)
			uc.logger.Info("CreateReservation: using default policy for venue=%d", req.VenueID)
		}

		if !policy.IsActive {
			uc.logger.Warn("CreateReservation: bookings disabled for venue=%d", req.VenueID)
			return ErrBookingsDisabled
		}

		// 4.2. Валидация даты с учетом горизонта бронирования
		if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateReservation: date validation failed: %v", err)
			return err
		}

		// 4.3. Размер компании по границам политики
		if !policy.AllowsPartySize(req.PartySize) {
			uc.logger.Warn("CreateReservation: party size %d not allowed for venue=%d", req.PartySize, req.VenueID)
			return ErrPartySizeNotAllowed
		}

		// 4.4. Расписание работы на указанную дату
		schedule, err := uc.configRepo.GetWeekSchedule(txCtx, req.VenueID)
		if err != nil {
			if errors.Is(err, configRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateReservation: venue=%d has no schedule", req.VenueID)
				return ErrVenueClosed
			}
			uc.logger.Error("CreateReservation: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		day := schedule.DayFor(req.Date)
		if !day.IsOpen {
			uc.logger.Warn("CreateReservation: venue=%d is closed on %s", req.VenueID, req.Date.Format(domain.DateFormat))
			return ErrVenueClosed
		}

		// 4.5. Рабочие часы и минимальный запас по времени
		if err := validateStartTime(req.StartTime, day, req.Date, now, policy.AdvanceBookingHours); err != nil {
			uc.logger.Warn("CreateReservation: start time validation failed: %v", err)
			return err
		}

		// 4.6. Стол: существует, принадлежит заведению, активен, вмещает компанию
		table, err := uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
				return ErrTableNotFound
			}
			uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		if table.VenueID != req.VenueID || !table.IsActive {
			uc.logger.Warn("CreateReservation: table id=%d not available in venue=%d", req.TableID, req.VenueID)
			return ErrTableNotFound
		}

		if !table.CanSeat(req.PartySize) {
			uc.logger.Warn("CreateReservation: table id=%d capacity=%d cannot seat party=%d",
				table.ID, table.Capacity, req.PartySize)
			return ErrTableTooSmall
		}

		// 4.7. Получаем активные бронирования стола на эту дату с блокировкой (FOR UPDATE)
		filter := domain.VenueReservationsFilter{
			VenueID:         req.VenueID,
			TableID:         &req.TableID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		reservations, err := uc.reservationRepo.GetByVenueWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.8. Проверяем, что стол свободен на интервале визита
		conflict, err := findConflict(req.StartTime, policy.ReservationDurationMinutes, reservations)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateReservation: table id=%d conflicts with reservation id=%d", req.TableID, conflict.ID)
			return ErrTableNotAvailable
		}

		// 4.9. Создаем бронирование; длительность фиксируется из политики
		// на момент создания и не меняется при последующих изменениях политики
		reservation := &domain.Reservation{
			UserID:          req.UserID,
			VenueID:         req.VenueID,
			TableID:         req.TableID,
			PartySize:       req.PartySize,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: policy.ReservationDurationMinutes,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Уникальный индекс дублирует проверку конфликтов на случай
			// гонки за пределами сериализуемой транзакции
			if errors.Is(err, reservationRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateReservation: duplicate slot for table id=%d", req.TableID)
				return ErrTableNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Новое бронирование меняет картину загруженности на весь день
	uc.occupancyCache.InvalidateDay(result.VenueID, result.Date)

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		VenueID:         result.VenueID,
		TableID:         result.TableID,
		PartySize:       result.PartySize,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

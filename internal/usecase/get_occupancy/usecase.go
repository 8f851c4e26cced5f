package get_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	venueClient "github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
)

// UseCase use case оценки загруженности заведения
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	venueClient     VenueServiceClient
	cache           OccupancyCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	venueClient VenueServiceClient,
	cache OccupancyCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		venueClient:     venueClient,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет оценку загруженности на момент (date, time)
// Результат кешируется по ключу (venueID, date, time); создание и отмена
// бронирований инвалидируют все бакеты дня.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.TimeOfDay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	// 2. Пробуем взять оценку из кеша
	if snapshot, ok := uc.cache.Get(req.VenueID, req.Date, req.TimeOfDay); ok {
		uc.logger.Info("GetOccupancy: cache hit for venue=%d, date=%s, time=%s",
			req.VenueID, req.Date.Format(domain.DateFormat), req.TimeOfDay)
		return toResponse(snapshot, true), nil
	}

	// 3. Проверяем заведение в каталоге
	if _, err := uc.venueClient.GetVenue(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("GetOccupancy: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetOccupancy: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Активные столы заведения
	tables, err := uc.tableRepo.ListByVenue(ctx, req.VenueID, true)
	if err != nil {
		uc.logger.Error("GetOccupancy: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 5. Бронирования на эту дату, включая завершённые
	// (завершённый визит всё ещё занимает стол до конца интервала)
	filter := domain.VenueReservationsFilter{
		VenueID:         req.VenueID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: true,
	}

	reservations, err := uc.reservationRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetOccupancy: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Строим оценку и кладем в кеш
	snapshot := estimateOccupancy(req.VenueID, req.Date, req.TimeOfDay, tables, reservations)
	uc.cache.Set(req.VenueID, req.Date, req.TimeOfDay, snapshot)

	uc.logger.Info("GetOccupancy: venue=%d, date=%s, time=%s, occupied=%d/%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.TimeOfDay,
		snapshot.OccupiedTables, snapshot.TotalTables)

	return toResponse(snapshot, false), nil
}

func toResponse(snapshot *domain.OccupancySnapshot, fromCache bool) *Response {
	return &Response{
		VenueID:           snapshot.VenueID,
		Date:              snapshot.Date,
		TimeOfDay:         snapshot.Time,
		TotalTables:       snapshot.TotalTables,
		OccupiedTables:    snapshot.OccupiedTables,
		AvailableTables:   snapshot.AvailableTables,
		TotalCapacity:     snapshot.TotalCapacity,
		OccupiedCapacity:  snapshot.OccupiedCapacity,
		AvailableCapacity: snapshot.AvailableCapacity,
		OccupancyRate:     snapshot.OccupancyRate,
		IsFull:            snapshot.IsFull(),
		FromCache:         fromCache,
	}
}

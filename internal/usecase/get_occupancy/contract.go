package get_occupancy

import (
	"context"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueReservationsFilter) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Table, error)
}

// VenueServiceClient интерфейс клиента каталога заведений
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error)
}

// OccupancyCache интерфейс кеша оценок загруженности
type OccupancyCache interface {
	Get(venueID int64, date time.Time, timeOfDay types.TimeString) (*domain.OccupancySnapshot, bool)
	Set(venueID int64, date time.Time, timeOfDay types.TimeString, snapshot *domain.OccupancySnapshot)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByVenueWithFilter получает бронирования заведения на конкретную дату
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueReservationsFilter) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Table, error)
}

// ConfigRepository интерфейс репозитория конфигурации заведения
type ConfigRepository interface {
	GetPolicy(ctx context.Context, venueID int64) (*domain.BookingPolicy, error)
	GetWeekSchedule(ctx context.Context, venueID int64) (domain.WeekSchedule, error)
}

// VenueServiceClient интерфейс клиента каталога заведений
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error)
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

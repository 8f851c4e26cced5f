package venueconfig

import (
	"context"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
)

// ConfigRepository интерфейс репозитория конфигурации заведения
type ConfigRepository interface {
	GetPolicy(ctx context.Context, venueID int64) (*domain.BookingPolicy, error)
	UpsertPolicy(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error)
	GetWeekSchedule(ctx context.Context, venueID int64) (domain.WeekSchedule, error)
	ReplaceWeekSchedule(ctx context.Context, venueID int64, schedule domain.WeekSchedule) error
}

// VenueServiceClient интерфейс клиента каталога заведений
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

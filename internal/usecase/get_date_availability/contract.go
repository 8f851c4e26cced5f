package get_date_availability

import (
	"context"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации заведения
type ConfigRepository interface {
	GetPolicy(ctx context.Context, venueID int64) (*domain.BookingPolicy, error)
	GetWeekSchedule(ctx context.Context, venueID int64) (domain.WeekSchedule, error)
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

package create_reservation

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// Request модель запроса создания бронирования
type Request struct {
	UserID    int64            // ID пользователя
	VenueID   int64            // ID заведения
	TableID   int64            // ID стола
	Date      time.Time        // Дата визита
	StartTime types.TimeString // Время начала визита
	PartySize int              // Количество гостей
	Notes     *string          // Комментарий гостя (опционально)
}

// Response модель созданного бронирования
type Response struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	VenueID         int64            `json:"venue_id"`
	TableID         int64            `json:"table_id"`
	PartySize       int              `json:"party_size"`
	Date            time.Time        `json:"date"`
	StartTime       types.TimeString `json:"start_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Status          string           `json:"status"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

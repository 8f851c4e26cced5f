package validate_reservation

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// Причины отклонения запроса. Нарушение политики - это не ошибка,
// а структурированный результат с valid=false.
const (
	ReasonVenueClosed          = "venue is closed on this day"
	ReasonOutsideBusinessHours = "requested time is outside business hours"
	ReasonBookingsDisabled     = "online booking is disabled for this venue"
	ReasonPartySizeOutOfBounds = "party size is out of bounds"
	ReasonBeyondAdvanceWindow  = "date is beyond the advance booking window"
	ReasonTooLateToBook        = "too late to book this slot"
	ReasonTableUnknown         = "table not found or inactive"
	ReasonTableTooSmall        = "table cannot seat the requested party size"
	ReasonTableUnavailable     = "table unavailable for requested time"
)

// Request модель запроса валидации бронирования
type Request struct {
	UserID    int64            // ID пользователя
	VenueID   int64            // ID заведения
	TableID   int64            // ID стола
	Date      time.Time        // Дата визита
	StartTime types.TimeString // Время начала визита
	PartySize int              // Количество гостей
}

// Response модель результата валидации
type Response struct {
	Valid                    bool   `json:"valid"`
	Reason                   string `json:"reason,omitempty"`
	ConflictingReservationID *int64 `json:"conflicting_reservation_id,omitempty"`
}

func validResponse() *Response {
	return &Response{Valid: true}
}

func invalidResponse(reason string) *Response {
	return &Response{Valid: false, Reason: reason}
}

func conflictResponse(reservationID int64) *Response {
	return &Response{
		Valid:                    false,
		Reason:                   ReasonTableUnavailable,
		ConflictingReservationID: &reservationID,
	}
}

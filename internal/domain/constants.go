package domain

// Default booking policy values
const (
	DefaultSlotDurationMinutes        = 30
	DefaultReservationDurationMinutes = 120
	DefaultMinPartySize               = 1
	DefaultMaxPartySize               = 12
	DefaultAdvanceBookingDays         = 30 // 0 = unlimited
	DefaultAdvanceBookingHours        = 0
)

// Business validation constants
const (
	MinSlotDurationMinutes        = 5
	MaxSlotDurationMinutes        = 480 // 8 hours
	MinReservationDurationMinutes = 15
	MaxReservationDurationMinutes = 480
	MaxPartySizeLimit             = 100
	MaxAdvanceBookingDays         = 365 // 1 year
	MaxAdvanceBookingHours        = 168 // 1 week
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы бронирований, блокирующих стол для новых бронирований
// Используются при проверке конфликтов интервалов
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// OccupyingStatuses статусы бронирований, учитываемых в оценке загрузки зала
// completed включён, чтобы дашборд видел уже посаженных гостей
var OccupyingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// InactiveStatuses список статусов неактивных бронирований
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByGuest,
	StatusCancelledByVenue,
}

package get_available_slots

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("get_available_slots: venue not found")

	// ErrVenueInactive возвращается, когда заведение деактивировано
	ErrVenueInactive = errors.New("get_available_slots: venue is inactive")

	// ErrTableNotFound возвращается, когда запрошенный стол не найден в заведении
	ErrTableNotFound = errors.New("get_available_slots: table not found")

	// ErrInvalidDate возвращается при некорректной дате (в прошлом)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

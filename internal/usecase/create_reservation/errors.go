package create_reservation

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("create_reservation: venue not found")

	// ErrVenueInactive возвращается, когда заведение деактивировано
	ErrVenueInactive = errors.New("create_reservation: venue is inactive")

	// ErrVenueClosed возвращается, когда заведение не работает в этот день
	ErrVenueClosed = errors.New("create_reservation: venue is closed on this day")

	// ErrOutsideBusinessHours возвращается, когда визит начинается вне рабочих часов
	ErrOutsideBusinessHours = errors.New("create_reservation: requested time is outside business hours")

	// ErrBookingsDisabled возвращается, когда онлайн-бронирование выключено
	ErrBookingsDisabled = errors.New("create_reservation: online booking is disabled for this venue")

	// ErrPartySizeNotAllowed возвращается, когда размер компании вне границ политики
	ErrPartySizeNotAllowed = errors.New("create_reservation: party size is out of bounds")

	// ErrInvalidDate возвращается при попытке забронировать на прошедшую дату
	ErrInvalidDate = errors.New("create_reservation: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("create_reservation: date is beyond the advance booking window")

	// ErrTooLateToBook возвращается, когда до начала визита меньше минимального запаса
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrTableNotFound возвращается, когда стол не найден или неактивен
	ErrTableNotFound = errors.New("create_reservation: table not found or inactive")

	// ErrTableTooSmall возвращается, когда стол не вмещает компанию
	ErrTableTooSmall = errors.New("create_reservation: table cannot seat the requested party size")

	// ErrTableNotAvailable возвращается, когда стол занят в запрошенное время
	ErrTableNotAvailable = errors.New("create_reservation: table unavailable for requested time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

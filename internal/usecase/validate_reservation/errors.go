package validate_reservation

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("validate_reservation: venue not found")

	// ErrVenueInactive возвращается, когда заведение деактивировано
	ErrVenueInactive = errors.New("validate_reservation: venue is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Правило fail-closed: если проверку нельзя довести до конца,
	// результат - ошибка, а не valid=true.
	ErrInternal = errors.New("validate_reservation: internal error")
)

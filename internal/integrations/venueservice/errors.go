package venueservice

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("venue not found")

	// ErrVenueInactive возвращается, когда заведение деактивировано
	ErrVenueInactive = errors.New("venue is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("venueservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("venueservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что каталог недоступен; read-only сценарии могут продолжить
	// работу без метаданных заведения, путь создания бронирования - нет
	ErrServiceDegraded = errors.New("venueservice unavailable: graceful degradation applied")
)

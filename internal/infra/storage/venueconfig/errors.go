package venueconfig

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда политика бронирования не найдена
	ErrPolicyNotFound = errors.New("venueconfig.repository: booking policy not found")

	// ErrScheduleNotFound возвращается, когда расписание работы не найдено
	ErrScheduleNotFound = errors.New("venueconfig.repository: week schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("venueconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("venueconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("venueconfig.repository: failed to scan row")
)

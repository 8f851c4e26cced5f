package domain

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректном расписании работы
	ErrInvalidSchedule = errors.New("domain: invalid schedule")

	// ErrInvalidPolicy возвращается при некорректной политике бронирования
	ErrInvalidPolicy = errors.New("domain: invalid booking policy")
)

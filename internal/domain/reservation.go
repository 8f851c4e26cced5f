package domain

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending          ReservationStatus = "pending"
	StatusConfirmed        ReservationStatus = "confirmed"
	StatusCompleted        ReservationStatus = "completed"
	StatusCancelledByGuest ReservationStatus = "cancelled_by_guest"
	StatusCancelledByVenue ReservationStatus = "cancelled_by_venue"
)

// Reservation represents a single-table reservation in the system
type Reservation struct {
	ID              int64
	VenueID         int64
	TableID         int64
	UserID          int64
	PartySize       int
	Date            time.Time // Дата бронирования (без времени)
	StartTime       types.TimeString
	DurationMinutes int // Фиксированная длительность визита, денормализована из политики на момент создания
	Status          ReservationStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the reservation blocks its table for new bookings.
// Only pending and confirmed reservations participate in conflict checks.
func (r *Reservation) IsBlocking() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsOccupying returns true if the reservation counts towards occupancy estimates.
// Completed reservations are included so dashboards reflect seated guests.
func (r *Reservation) IsOccupying() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed || r.Status == StatusCompleted
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByGuest || r.Status == StatusCancelledByVenue
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Interval возвращает полуинтервал [start, start+duration), который бронирование
// занимает на столе
func (r *Reservation) Interval() (start types.TimeString, end types.TimeString, err error) {
	end, err = r.StartTime.AddMinutes(r.DurationMinutes)
	if err != nil {
		return "", "", err
	}
	return r.StartTime, end, nil
}

// VenueReservationsFilter фильтр для получения бронирований заведения
type VenueReservationsFilter struct {
	VenueID         int64              // Обязательный параметр
	TableID         *int64             // Фильтр по столу (опционально, если nil - все столы)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}

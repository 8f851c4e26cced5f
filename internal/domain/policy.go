package domain

import (
	"fmt"
	"time"
)

// BookingPolicy represents the reservation policy of a venue
// Created once by an administrator and rarely mutated; a read-only input
// to every availability decision.
type BookingPolicy struct {
	ID                         int64
	VenueID                    int64
	SlotDurationMinutes        int // Шаг сетки слотов
	ReservationDurationMinutes int // Фиксированная длительность визита
	MinPartySize               int
	MaxPartySize               int
	AdvanceBookingDays         int // Горизонт бронирования в днях, 0 = без ограничения
	AdvanceBookingHours        int // Минимальное время до начала визита в часах
	IsActive                   bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// Validate проверяет политику на допустимые границы значений
func (p *BookingPolicy) Validate() error {
	if p.SlotDurationMinutes < MinSlotDurationMinutes || p.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidPolicy, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if p.ReservationDurationMinutes < MinReservationDurationMinutes || p.ReservationDurationMinutes > MaxReservationDurationMinutes {
		return fmt.Errorf("%w: reservation duration must be between %d and %d minutes",
			ErrInvalidPolicy, MinReservationDurationMinutes, MaxReservationDurationMinutes)
	}
	if p.MinPartySize < 1 {
		return fmt.Errorf("%w: min party size must be positive", ErrInvalidPolicy)
	}
	if p.MinPartySize > p.MaxPartySize {
		return fmt.Errorf("%w: min party size must not exceed max party size", ErrInvalidPolicy)
	}
	if p.MaxPartySize > MaxPartySizeLimit {
		return fmt.Errorf("%w: max party size must not exceed %d", ErrInvalidPolicy, MaxPartySizeLimit)
	}
	if p.AdvanceBookingDays < 0 || p.AdvanceBookingDays > MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be between 0 and %d",
			ErrInvalidPolicy, MaxAdvanceBookingDays)
	}
	if p.AdvanceBookingHours < 0 || p.AdvanceBookingHours > MaxAdvanceBookingHours {
		return fmt.Errorf("%w: advance booking hours must be between 0 and %d",
			ErrInvalidPolicy, MaxAdvanceBookingHours)
	}
	return nil
}

// AllowsPartySize returns true if the party size fits the policy bounds
func (p *BookingPolicy) AllowsPartySize(partySize int) bool {
	return partySize >= p.MinPartySize && partySize <= p.MaxPartySize
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// reservations can be made
func (p *BookingPolicy) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// DefaultBookingPolicy возвращает политику с дефолтными значениями
// Используется, когда заведение ещё не настроило собственную политику.
func DefaultBookingPolicy(venueID int64) *BookingPolicy {
	return &BookingPolicy{
		VenueID:                    venueID,
		SlotDurationMinutes:        DefaultSlotDurationMinutes,
		ReservationDurationMinutes: DefaultReservationDurationMinutes,
		MinPartySize:               DefaultMinPartySize,
		MaxPartySize:               DefaultMaxPartySize,
		AdvanceBookingDays:         DefaultAdvanceBookingDays,
		AdvanceBookingHours:        DefaultAdvanceBookingHours,
		IsActive:                   true,
	}
}

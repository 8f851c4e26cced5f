package domain

import "time"

// Table represents a bookable table owned by a venue
// Read-only for the availability engine: tables are created and deactivated
// by venue administrators.
type Table struct {
	ID       int64
	VenueID  int64
	Number   int // Номер стола в зале
	Capacity int
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanSeat returns true if the table can physically seat the party
func (t *Table) CanSeat(partySize int) bool {
	return partySize > 0 && partySize <= t.Capacity
}

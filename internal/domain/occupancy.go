package domain

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// OccupancySnapshot represents an aggregate occupancy estimate for a venue
// at a single (date, time) bucket
//
// OccupiedTables вычисляется жадной упаковкой спроса по столам и является
// оценкой для дашборда, а не точной рассадкой: движок не знает фактического
// распределения гостей по столам в моменте.
type OccupancySnapshot struct {
	VenueID int64
	Date    time.Time
	Time    types.TimeString

	TotalTables     int
	OccupiedTables  int
	AvailableTables int

	// OccupiedCapacity - суммарный спрос (Σ partySize) в моменте; может
	// превышать TotalCapacity, тогда AvailableCapacity отрицательна
	TotalCapacity     int
	OccupiedCapacity  int
	AvailableCapacity int

	// OccupancyRate доля занятых столов (0..1); 0 при отсутствии столов
	OccupancyRate float64

	// ContributingReservations ID бронирований, попавших в оценку
	ContributingReservations []int64
}

// IsFull returns true if every table is estimated to be occupied
func (s *OccupancySnapshot) IsFull() bool {
	return s.TotalTables > 0 && s.OccupiedTables >= s.TotalTables
}

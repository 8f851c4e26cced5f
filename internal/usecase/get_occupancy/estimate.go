package get_occupancy

import (
	"sort"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// estimateOccupancy строит оценку загруженности на момент времени
//
// В оценку попадают бронирования, чей интервал [start, start+duration)
// содержит запрошенный момент. Завершённые визиты учитываются: стол занят
// до конца интервала независимо от статуса, пока бронирование не отменено.
//
// Спрос (сумма partySize) жадно упаковывается по столам от меньшей
// вместимости к большей: маленькие компании занимают маленькие столы,
// большим остаются большие. Это верхняя оценка свободных столов, а не
// фактическая рассадка.
func estimateOccupancy(
	venueID int64,
	date time.Time,
	timeOfDay types.TimeString,
	tables []*domain.Table,
	reservations []*domain.Reservation,
) *domain.OccupancySnapshot {
	snapshot := &domain.OccupancySnapshot{
		VenueID:     venueID,
		Date:        date,
		Time:        timeOfDay,
		TotalTables: len(tables),
	}

	for _, t := range tables {
		snapshot.TotalCapacity += t.Capacity
	}

	// Спрос на места в запрошенный момент
	demand := 0
	for _, res := range reservations {
		if !res.IsOccupying() {
			continue
		}

		resStart, resEnd, err := res.Interval()
		if err != nil {
			continue
		}

		// Момент внутри полуинтервала: start <= t < end
		if timeOfDay.IsBefore(resStart) || !timeOfDay.IsBefore(resEnd) {
			continue
		}

		demand += res.PartySize
		snapshot.ContributingReservations = append(snapshot.ContributingReservations, res.ID)
	}

	// Занятая вместимость - это спрос, а не сумма вместимостей занятых
	// столов; спрос может превышать общую вместимость заведения
	snapshot.OccupiedCapacity = demand

	// Жадная упаковка: столы по возрастанию вместимости
	sorted := make([]*domain.Table, len(tables))
	copy(sorted, tables)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	remaining := demand
	for _, t := range sorted {
		if remaining <= 0 {
			break
		}
		snapshot.OccupiedTables++
		remaining -= t.Capacity
	}

	snapshot.AvailableTables = snapshot.TotalTables - snapshot.OccupiedTables
	snapshot.AvailableCapacity = snapshot.TotalCapacity - snapshot.OccupiedCapacity

	if snapshot.TotalTables > 0 {
		snapshot.OccupancyRate = float64(snapshot.OccupiedTables) / float64(snapshot.TotalTables)
	}

	return snapshot
}

package get_occupancy

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// Request модель запроса оценки загруженности
type Request struct {
	VenueID   int64            // ID заведения
	Date      time.Time        // Дата
	TimeOfDay types.TimeString // Момент дня, на который оценивается загруженность
}

// Response модель оценки загруженности заведения на момент времени
//
// Оценка эвристическая: бронирования не привязаны к столам жестко на момент
// визита, поэтому количество занятых столов вычисляется жадной упаковкой
// гостей по столам от меньшего к большему. AvailableCapacity может быть
// отрицательной: спрос не ограничен вместимостью заведения.
type Response struct {
	VenueID           int64            `json:"venue_id"`
	Date              time.Time        `json:"date"`
	TimeOfDay         types.TimeString `json:"time"`
	TotalTables       int              `json:"total_tables"`
	OccupiedTables    int              `json:"occupied_tables"`
	AvailableTables   int              `json:"available_tables"`
	TotalCapacity     int              `json:"total_capacity"`
	OccupiedCapacity  int              `json:"occupied_capacity"`
	AvailableCapacity int              `json:"available_capacity"`
	OccupancyRate     float64          `json:"occupancy_rate"`
	IsFull            bool             `json:"is_full"`
	FromCache         bool             `json:"-"` // Только для логирования
}

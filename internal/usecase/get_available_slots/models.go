package get_available_slots

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	VenueID int64     // ID заведения
	TableID *int64    // ID стола (опционально; если nil - доступность по всем столам)
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time // Дата, на которую запрашивались слоты
	VenueID int64     // ID заведения
	Slots   []Slot    // Список слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "19:00")
	DurationMinutes int              // Длительность визита в минутах
	AvailableTables int              // Количество свободных столов
	TotalTables     int              // Общее количество активных столов
}

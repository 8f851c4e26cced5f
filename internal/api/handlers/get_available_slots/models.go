package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date    string          `json:"date"`
	VenueID int64           `json:"venueId"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AvailableTables int    `json:"availableTables"`
	TotalTables     int    `json:"totalTables"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableTables: slot.AvailableTables,
			TotalTables:     slot.TotalTables,
		}
	}

	return &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		VenueID: resp.VenueID,
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(venueID int64, dateStr, tableIDStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		VenueID: venueID,
		Date:    date,
	}

	// Опциональный фильтр по столу
	if tableIDStr != "" {
		tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TableID = &tableID
	}

	return req, nil
}

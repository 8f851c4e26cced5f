package get_occupancy

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	getOccupancy "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_occupancy"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	VenueID          int64   `json:"venueId"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	TotalTables      int     `json:"totalTables"`
	OccupiedTables   int     `json:"occupiedTables"`
	AvailableTables  int     `json:"availableTables"`
	TotalCapacity    int     `json:"totalCapacity"`
	OccupiedCapacity int     `json:"occupiedCapacity"`
	// Отрицательна, когда спрос превышает вместимость заведения
	AvailableCapacity int     `json:"availableCapacity"`
	OccupancyRate     float64 `json:"occupancyRate"`
	IsFull            bool    `json:"isFull"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancy.Response) *OccupancyResponse {
	return &OccupancyResponse{
		VenueID:           resp.VenueID,
		Date:              resp.Date.Format(domain.DateFormat),
		Time:              resp.TimeOfDay.String(),
		TotalTables:       resp.TotalTables,
		OccupiedTables:    resp.OccupiedTables,
		AvailableTables:   resp.AvailableTables,
		TotalCapacity:     resp.TotalCapacity,
		OccupiedCapacity:  resp.OccupiedCapacity,
		AvailableCapacity: resp.AvailableCapacity,
		OccupancyRate:     resp.OccupancyRate,
		IsFull:            resp.IsFull,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(venueID int64, dateStr, timeStr string) (*getOccupancy.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	timeOfDay, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &getOccupancy.Request{
		VenueID:   venueID,
		Date:      date,
		TimeOfDay: timeOfDay,
	}, nil
}

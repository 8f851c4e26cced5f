package get_date_availability

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	getDateAvailability "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_date_availability"
)

// DateAvailabilityResponse HTTP response model
type DateAvailabilityResponse struct {
	VenueID   int64  `json:"venueId"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDateAvailability.Response) *DateAvailabilityResponse {
	return &DateAvailabilityResponse{
		VenueID:   resp.VenueID,
		Date:      resp.Date.Format(domain.DateFormat),
		Available: resp.Available,
		Reason:    resp.Reason,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(venueID int64, dateStr string) (*getDateAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDateAvailability.Request{
		VenueID: venueID,
		Date:    date,
	}, nil
}

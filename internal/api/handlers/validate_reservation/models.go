package validate_reservation

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	validateReservation "github.com/m04kA/TRP-AvailabilityService/internal/usecase/validate_reservation"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// ValidateReservationRequest HTTP request model
type ValidateReservationRequest struct {
	VenueID   int64  `json:"venueId"`
	TableID   int64  `json:"tableId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "19:00"
	PartySize int    `json:"partySize"`
}

// ValidationResponse HTTP response model
type ValidationResponse struct {
	Valid                    bool   `json:"valid"`
	Reason                   string `json:"reason,omitempty"`
	ConflictingReservationID *int64 `json:"conflictingReservationId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateReservationRequest) ToUseCaseRequest(userID int64) (*validateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &validateReservation.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		TableID:   r.TableID,
		Date:      date,
		StartTime: startTime,
		PartySize: r.PartySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateReservation.Response) *ValidationResponse {
	return &ValidationResponse{
		Valid:                    resp.Valid,
		Reason:                   resp.Reason,
		ConflictingReservationID: resp.ConflictingReservationID,
	}
}

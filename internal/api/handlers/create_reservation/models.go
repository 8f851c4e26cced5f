package create_reservation

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	createReservation "github.com/m04kA/TRP-AvailabilityService/internal/usecase/create_reservation"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VenueID   int64   `json:"venueId"`
	TableID   int64   `json:"tableId"`
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "19:00"
	PartySize int     `json:"partySize"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	VenueID         int64   `json:"venueId"`
	TableID         int64   `json:"tableId"`
	PartySize       int     `json:"partySize"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		TableID:   r.TableID,
		Date:      date,
		StartTime: startTime,
		PartySize: r.PartySize,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		VenueID:         resp.VenueID,
		TableID:         resp.TableID,
		PartySize:       resp.PartySize,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

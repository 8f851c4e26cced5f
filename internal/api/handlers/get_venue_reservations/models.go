package get_venue_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	venueID int64,
	userID int64,
	tableIDStr string,
	statusStr string,
	dateStr string,
	includeInactiveStr string,
) (*models.GetVenueReservationsRequest, error) {
	req := &models.GetVenueReservationsRequest{
		UserID:          userID,
		VenueID:         venueID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим tableId если указан
	if tableIDStr != "" {
		tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TableID = &tableID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TRP-AvailabilityService/internal/api/handlers"
	getOccupancy "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_occupancy"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
	msgMissingParams  = "параметры date и time обязательны"
	msgInvalidParams  = "некорректные параметры, ожидается date=YYYY-MM-DD и time=HH:MM"
	msgVenueNotFound  = "заведение не найдено"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/occupancy
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем venueId из URL
	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/occupancy - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /venues/{id}/occupancy - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/occupancy - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/occupancy - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/occupancy - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /venues/{id}/occupancy - Failed to get occupancy: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/occupancy - Occupancy retrieved: venue_id=%d, occupied=%d/%d, cache=%t",
		venueID, result.OccupiedTables, result.TotalTables, result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TRP-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
	msgMissingDate    = "дата обязательна"
	msgInvalidParams  = "некорректные параметры запроса, ожидается date=YYYY-MM-DD"
	msgVenueNotFound  = "заведение не найдено"
	msgVenueInactive  = "заведение неактивно"
	msgTableNotFound  = "стол не найден"
	msgInvalidDate    = "некорректная дата"
	msgDateTooFar     = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/available-slots
// Query params: date (required, YYYY-MM-DD), tableId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем venueId из URL
	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	tableIDStr := r.URL.Query().Get("tableId")

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(venueID, dateStr, tableIDStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/available-slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailableSlots.ErrVenueInactive):
			h.logger.Warn("GET /venues/{id}/available-slots - Venue inactive: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVenueInactive)

		case errors.Is(err, getAvailableSlots.ErrTableNotFound):
			h.logger.Warn("GET /venues/{id}/available-slots - Table not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /venues/{id}/available-slots - Invalid date: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /venues/{id}/available-slots - Date too far in future: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/available-slots - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /venues/{id}/available-slots - Failed to get slots: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /venues/{id}/available-slots - Slots retrieved successfully: venue_id=%d, slots_count=%d",
		venueID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

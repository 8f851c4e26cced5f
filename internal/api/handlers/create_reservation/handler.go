package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/TRP-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/TRP-AvailabilityService/internal/api/middleware"
	createReservation "github.com/m04kA/TRP-AvailabilityService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgVenueNotFound       = "заведение не найдено"
	msgVenueInactive       = "заведение неактивно"
	msgVenueClosed         = "заведение закрыто в выбранную дату"
	msgOutsideHours        = "время вне часов работы заведения"
	msgBookingsDisabled    = "онлайн-бронирование недоступно для этого заведения"
	msgPartySizeNotAllowed = "недопустимое количество гостей"
	msgInvalidDate         = "некорректная дата бронирования"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook       = "слишком поздно для бронирования этого времени"
	msgTableNotFound       = "стол не найден"
	msgTableTooSmall       = "стол не вмещает указанное количество гостей"
	msgTableNotAvailable   = "стол занят в выбранное время"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createReservation.ErrTableNotAvailable):
			h.logger.Warn("POST /reservations - Table not available: user_id=%d, venue_id=%d, table_id=%d",
				userID, req.VenueID, req.TableID)
			handlers.RespondError(w, http.StatusConflict, msgTableNotAvailable)

		case errors.Is(err, createReservation.ErrVenueNotFound):
			h.logger.Warn("POST /reservations - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createReservation.ErrVenueInactive):
			h.logger.Warn("POST /reservations - Venue inactive: venue_id=%d", req.VenueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVenueInactive)

		case errors.Is(err, createReservation.ErrVenueClosed):
			h.logger.Warn("POST /reservations - Venue closed: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, createReservation.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations - Outside business hours: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrBookingsDisabled):
			h.logger.Warn("POST /reservations - Bookings disabled: venue_id=%d", req.VenueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingsDisabled)

		case errors.Is(err, createReservation.ErrPartySizeNotAllowed):
			h.logger.Warn("POST /reservations - Party size not allowed: user_id=%d, venue_id=%d, party_size=%d",
				userID, req.VenueID, req.PartySize)
			handlers.RespondBadRequest(w, msgPartySizeNotAllowed)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - Date too far in future: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: venue_id=%d, table_id=%d", req.VenueID, req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTableTooSmall):
			h.logger.Warn("POST /reservations - Table too small: venue_id=%d, table_id=%d, party_size=%d",
				req.VenueID, req.TableID, req.PartySize)
			handlers.RespondBadRequest(w, msgTableTooSmall)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, venue_id=%d",
		result.ID, userID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования:
// today <= date <= today + advanceBookingDays
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateStartTime проверяет рабочие часы и минимальный запас по времени:
// openTime <= start < closeTime и момент начала не раньше now + advanceNoticeHours
func validateStartTime(start types.TimeString, day domain.DaySchedule, date, now time.Time, advanceNoticeHours int) error {
	if day.OpenTime == nil || day.CloseTime == nil {
		return ErrVenueClosed
	}

	if start.IsBefore(*day.OpenTime) || !start.IsBefore(*day.CloseTime) {
		return ErrOutsideBusinessHours
	}

	instant, err := start.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve start time: %v", ErrInternal, err)
	}

	earliest := now.Add(time.Duration(advanceNoticeHours) * time.Hour)
	if instant.Before(earliest) {
		return ErrTooLateToBook
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// findConflict возвращает первое блокирующее бронирование, пересекающееся
// с интервалом кандидата [start, start+duration)
//
// Пересечение полуинтервалов строгое: граничащие интервалы не конфликтуют.
func findConflict(
	start types.TimeString,
	durationMinutes int,
	reservations []*domain.Reservation,
) (*domain.Reservation, error) {
	candidateEnd, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil, err
	}

	for _, res := range reservations {
		if !res.IsBlocking() {
			continue
		}

		resStart, resEnd, err := res.Interval()
		if err != nil {
			// Не можем вычислить интервал - fail-closed, считаем конфликтом
			return res, nil
		}

		if resStart.IsBefore(candidateEnd) && resEnd.IsAfter(start) {
			return res, nil
		}
	}

	return nil, nil
}

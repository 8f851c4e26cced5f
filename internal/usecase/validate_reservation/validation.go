package validate_reservation

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

// withinBusinessHours проверяет, что визит начинается в рабочие часы:
// openTime <= start < closeTime. Время окончания визита может выходить
// за время закрытия - важен только момент начала.
func withinBusinessHours(start types.TimeString, day domain.DaySchedule) bool {
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return false
	}

	if start.IsBefore(*day.OpenTime) {
		return false
	}

	return start.IsBefore(*day.CloseTime)
}

// withinAdvanceWindow проверяет горизонт бронирования:
// today <= date <= today + advanceBookingDays (0 = без ограничения)
func withinAdvanceWindow(date, now time.Time, advanceBookingDays int) bool {
	if isDateInPast(date, now) {
		return false
	}

	if advanceBookingDays == 0 {
		return true
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	return !dateOnly.After(maxDate)
}

// meetsAdvanceNotice проверяет минимальный запас по времени до начала визита:
// абсолютный момент начала не раньше, чем now + advanceNoticeHours
func meetsAdvanceNotice(start types.TimeString, date, now time.Time, advanceNoticeHours int) (bool, error) {
	instant, err := start.OnDate(date)
	if err != nil {
		return false, err
	}

	earliest := now.Add(time.Duration(advanceNoticeHours) * time.Hour)

	return !instant.Before(earliest), nil
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
// Два полуинтервала [S, S+D) и [E, E+D') пересекаются тогда и только тогда,
// когда S < E+D' И E < S+D. Строгие неравенства означают, что граничащие
// интервалы (один заканчивается ровно там, где начинается другой) не
// считаются пересечением.
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

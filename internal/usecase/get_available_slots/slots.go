package get_available_slots

import (
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// generateTimeSlots генерирует список бронируемых временных слотов на день
// Слоты идут с начала работы заведения с фиксированным шагом slotDuration.
//
// Гарантии:
// - слоты строго возрастают;
// - каждый слот удовлетворяет openTime <= slot < closeTime (время закрытия
//   исключено: визит может начаться до закрытия, но не в момент закрытия);
// - слот не раньше, чем now + advanceNoticeHours (сравнение по абсолютному
//   времени, поэтому фильтр работает и для будущих дат, а прошедшие даты
//   дают пустой список).
func generateTimeSlots(
	day domain.DaySchedule,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
	advanceNoticeHours int,
) ([]types.TimeString, error) {
	// Если заведение закрыто в этот день
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return []types.TimeString{}, nil
	}

	earliest := now.Add(time.Duration(advanceNoticeHours) * time.Hour)

	slots := make([]types.TimeString, 0)
	currentSlot := *day.OpenTime

	for currentSlot.IsBefore(*day.CloseTime) {
		instant, err := currentSlot.OnDate(requestDate)
		if err != nil {
			return nil, err
		}

		if !instant.Before(earliest) {
			slots = append(slots, currentSlot)
		}

		next, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			// Сетка уперлась в конец суток
			break
		}
		currentSlot = next
	}

	return slots, nil
}

// countAvailableTables подсчитывает для каждого слота количество столов,
// на которые можно посадить гостей с визитом длительностью reservationDuration,
// начинающимся в этот слот
func countAvailableTables(
	slots []types.TimeString,
	reservationDuration int,
	tables []*domain.Table,
	reservations []*domain.Reservation,
) []Slot {
	byTable := groupBlockingByTable(reservations)

	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		available := 0
		for _, t := range tables {
			conflict, err := findConflict(slotStart, reservationDuration, byTable[t.ID])
			if err != nil {
				// Не можем доказать доступность - считаем стол занятым
				continue
			}
			if conflict == nil {
				available++
			}
		}

		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: reservationDuration,
			AvailableTables: available,
			TotalTables:     len(tables),
		}
	}

	return result
}

// groupBlockingByTable группирует блокирующие бронирования по столам
// Отменённые и завершённые бронирования не блокируют стол.
func groupBlockingByTable(reservations []*domain.Reservation) map[int64][]*domain.Reservation {
	byTable := make(map[int64][]*domain.Reservation)
	for _, res := range reservations {
		if !res.IsBlocking() {
			continue
		}
		byTable[res.TableID] = append(byTable[res.TableID], res)
	}
	return byTable
}

// findConflict возвращает первое бронирование, пересекающееся с интервалом
// кандидата [start, start+duration)
//
// Два полуинтервала [S, S+D) и [E, E+D') пересекаются тогда и только тогда,
// когда S < E+D' И E < S+D. Строгие неравенства означают, что граничащие
// интервалы (один заканчивается ровно там, где начинается другой) не
// считаются пересечением - отношение симметрично и корректно отбрасывает
// точные дубли, частичные пересечения и полное вложение в обе стороны.
//
// Примеры:
// - Кандидат 20:00-22:00, бронирование 19:00-21:00 → конфликт (20:00-21:00)
// - Кандидат 21:00-23:00, бронирование 19:00-21:00 → нет конфликта (граничат)
// - Кандидат 18:59-20:59, бронирование 19:00-21:00 → конфликт
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
		resStart, resEnd, err := res.Interval()
		if err != nil {
			// Не можем вычислить интервал - пропускаем бронирование
			continue
		}

		if resStart.IsBefore(candidateEnd) && resEnd.IsAfter(start) {
			return res, nil
		}
	}

	return nil, nil
}

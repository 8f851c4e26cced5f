package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// DaySchedule represents opening hours for a single weekday
// Closing time is exclusive: a reservation may start up to, but not at,
// the closing time. Spans past midnight are not supported.
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// Validate проверяет корректность расписания на день
func (d DaySchedule) Validate() error {
	if !d.IsOpen {
		return nil
	}
	if d.OpenTime == nil || d.CloseTime == nil {
		return fmt.Errorf("%w: open day requires opening and closing times", ErrInvalidSchedule)
	}
	if err := d.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: opening time: %v", ErrInvalidSchedule, err)
	}
	if err := d.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closing time: %v", ErrInvalidSchedule, err)
	}
	// Часы работы должны лежать внутри одних суток - закрытие позже полуночи
	// этой моделью не выражается
	if !d.OpenTime.IsBefore(*d.CloseTime) {
		return fmt.Errorf("%w: opening time must be before closing time", ErrInvalidSchedule)
	}
	return nil
}

// WeekSchedule represents the business calendar of a venue: per-weekday
// open/closed flag with opening hours
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// DayFor возвращает расписание работы заведения на день недели указанной даты
// День без явного расписания считается выходным (нулевой DaySchedule закрыт).
func (w WeekSchedule) DayFor(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Validate проверяет корректность расписания на всю неделю
func (w WeekSchedule) Validate() error {
	days := []struct {
		name string
		day  DaySchedule
	}{
		{"monday", w.Monday},
		{"tuesday", w.Tuesday},
		{"wednesday", w.Wednesday},
		{"thursday", w.Thursday},
		{"friday", w.Friday},
		{"saturday", w.Saturday},
		{"sunday", w.Sunday},
	}

	for _, d := range days {
		if err := d.day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	return nil
}

// Package types содержит общие value-типы сервиса
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerDay  = 24 * 60
	midnightString = "24:00"
)

var (
	// ErrInvalidFormat возвращается при некорректном формате времени
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("time is out of day bounds")
)

// TimeString время в формате HH:MM (время суток, без даты и таймзоны)
// Хранится и сериализуется как строка, сравнивается по минутам с начала суток.
// Значение "24:00" допустимо только как результат арифметики (конец дня),
// но не как входное значение.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение имеет формат HH:MM (00:00 - 23:59)
func (t TimeString) Validate() error {
	m, err := t.MinutesOfDay()
	if err != nil {
		return err
	}
	if m >= minutesPerDay {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// MinutesOfDay возвращает количество минут с начала суток
func (t TimeString) MinutesOfDay() (int, error) {
	s := string(t)
	if s == midnightString {
		return minutesPerDay, nil
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return hh*60 + mm, nil
}

// IsBefore возвращает true, если t строго раньше other
// При некорректном формате любого из значений возвращает false
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.MinutesOfDay()
	if err != nil {
		return false
	}
	b, err := other.MinutesOfDay()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Результат ровно в полночь представляется как "24:00";
// выход за пределы суток считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.MinutesOfDay()
	if err != nil {
		return "", err
	}
	m += minutes
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d min", ErrTimeOverflow, string(t), minutes)
	}
	if m == minutesPerDay {
		return TimeString(midnightString), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// OnDate возвращает абсолютный момент времени: дата date со временем t
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.MinutesOfDay()
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(m) * time.Minute), nil
}

// Scan реализует sql.Scanner
// PostgreSQL возвращает колонки TIME в формате HH:MM:SS - секунды отбрасываются
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateSeconds(v)
	case []byte:
		*t = truncateSeconds(string(v))
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidFormat, src)
	}
	return t.Validate()
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func truncateSeconds(s string) TimeString {
	if len(s) > 5 {
		return TimeString(s[:5])
	}
	return TimeString(s)
}

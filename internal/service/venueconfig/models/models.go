package models

import (
	"errors"
	"time"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации заведения
// Policy и Schedule опциональны - обновляются только переданные секции
type UpdateConfigRequest struct {
	UserID   int64             `json:"userId"`
	Policy   *UpdatePolicyBody `json:"policy,omitempty"`
	Schedule *WeekScheduleBody `json:"schedule,omitempty"`
}

// UpdatePolicyBody частичное обновление политики бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdatePolicyBody struct {
	SlotDurationMinutes        *int  `json:"slotDurationMinutes,omitempty"`
	ReservationDurationMinutes *int  `json:"reservationDurationMinutes,omitempty"`
	MinPartySize               *int  `json:"minPartySize,omitempty"`
	MaxPartySize               *int  `json:"maxPartySize,omitempty"`
	AdvanceBookingDays         *int  `json:"advanceBookingDays,omitempty"`
	AdvanceBookingHours        *int  `json:"advanceBookingHours,omitempty"`
	IsActive                   *bool `json:"isActive,omitempty"`
}

// ApplyToPolicy применяет обновления к существующей политике
// Обновляются только непустые (not nil) поля из request
func (b *UpdatePolicyBody) ApplyToPolicy(policy *domain.BookingPolicy) {
	if b.SlotDurationMinutes != nil {
		policy.SlotDurationMinutes = *b.SlotDurationMinutes
	}
	if b.ReservationDurationMinutes != nil {
		policy.ReservationDurationMinutes = *b.ReservationDurationMinutes
	}
	if b.MinPartySize != nil {
		policy.MinPartySize = *b.MinPartySize
	}
	if b.MaxPartySize != nil {
		policy.MaxPartySize = *b.MaxPartySize
	}
	if b.AdvanceBookingDays != nil {
		policy.AdvanceBookingDays = *b.AdvanceBookingDays
	}
	if b.AdvanceBookingHours != nil {
		policy.AdvanceBookingHours = *b.AdvanceBookingHours
	}
	if b.IsActive != nil {
		policy.IsActive = *b.IsActive
	}
}

// DayScheduleBody расписание работы на один день недели
type DayScheduleBody struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "09:00"
	CloseTime *string `json:"closeTime,omitempty"` // "23:00"
}

// WeekScheduleBody расписание работы на неделю
type WeekScheduleBody struct {
	Monday    DayScheduleBody `json:"monday"`
	Tuesday   DayScheduleBody `json:"tuesday"`
	Wednesday DayScheduleBody `json:"wednesday"`
	Thursday  DayScheduleBody `json:"thursday"`
	Friday    DayScheduleBody `json:"friday"`
	Saturday  DayScheduleBody `json:"saturday"`
	Sunday    DayScheduleBody `json:"sunday"`
}

// ToDomainSchedule конвертирует DTO в domain модель с валидацией формата времени
func (b *WeekScheduleBody) ToDomainSchedule() (domain.WeekSchedule, error) {
	var schedule domain.WeekSchedule
	var err error

	if schedule.Monday, err = toDomainDay(b.Monday); err != nil {
		return schedule, err
	}
	if schedule.Tuesday, err = toDomainDay(b.Tuesday); err != nil {
		return schedule, err
	}
	if schedule.Wednesday, err = toDomainDay(b.Wednesday); err != nil {
		return schedule, err
	}
	if schedule.Thursday, err = toDomainDay(b.Thursday); err != nil {
		return schedule, err
	}
	if schedule.Friday, err = toDomainDay(b.Friday); err != nil {
		return schedule, err
	}
	if schedule.Saturday, err = toDomainDay(b.Saturday); err != nil {
		return schedule, err
	}
	if schedule.Sunday, err = toDomainDay(b.Sunday); err != nil {
		return schedule, err
	}

	return schedule, nil
}

func toDomainDay(body DayScheduleBody) (domain.DaySchedule, error) {
	day := domain.DaySchedule{IsOpen: body.IsOpen}

	if body.OpenTime != nil {
		t, err := types.NewTimeStringFromString(*body.OpenTime)
		if err != nil {
			return day, ErrInvalidTime
		}
		day.OpenTime = &t
	}
	if body.CloseTime != nil {
		t, err := types.NewTimeStringFromString(*body.CloseTime)
		if err != nil {
			return day, ErrInvalidTime
		}
		day.CloseTime = &t
	}

	return day, nil
}

// Response модели

// PolicyResponse ответ с политикой бронирования заведения
type PolicyResponse struct {
	VenueID                    int64     `json:"venueId"`
	SlotDurationMinutes        int       `json:"slotDurationMinutes"`
	ReservationDurationMinutes int       `json:"reservationDurationMinutes"`
	MinPartySize               int       `json:"minPartySize"`
	MaxPartySize               int       `json:"maxPartySize"`
	AdvanceBookingDays         int       `json:"advanceBookingDays"`
	AdvanceBookingHours        int       `json:"advanceBookingHours"`
	IsActive                   bool      `json:"isActive"`
	IsDefault                  bool      `json:"isDefault"` // true, если заведение ещё не настроило политику
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// ConfigResponse ответ с полной конфигурацией заведения
type ConfigResponse struct {
	VenueID  int64            `json:"venueId"`
	Policy   PolicyResponse   `json:"policy"`
	Schedule WeekScheduleBody `json:"schedule"`
}

// Методы конвертации

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.BookingPolicy, isDefault bool) PolicyResponse {
	return PolicyResponse{
		VenueID:                    p.VenueID,
		SlotDurationMinutes:        p.SlotDurationMinutes,
		ReservationDurationMinutes: p.ReservationDurationMinutes,
		MinPartySize:               p.MinPartySize,
		MaxPartySize:               p.MaxPartySize,
		AdvanceBookingDays:         p.AdvanceBookingDays,
		AdvanceBookingHours:        p.AdvanceBookingHours,
		IsActive:                   p.IsActive,
		IsDefault:                  isDefault,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s domain.WeekSchedule) WeekScheduleBody {
	return WeekScheduleBody{
		Monday:    fromDomainDay(s.Monday),
		Tuesday:   fromDomainDay(s.Tuesday),
		Wednesday: fromDomainDay(s.Wednesday),
		Thursday:  fromDomainDay(s.Thursday),
		Friday:    fromDomainDay(s.Friday),
		Saturday:  fromDomainDay(s.Saturday),
		Sunday:    fromDomainDay(s.Sunday),
	}
}

func fromDomainDay(day domain.DaySchedule) DayScheduleBody {
	body := DayScheduleBody{IsOpen: day.IsOpen}

	if day.OpenTime != nil {
		open := day.OpenTime.String()
		body.OpenTime = &open
	}
	if day.CloseTime != nil {
		closeTime := day.CloseTime.String()
		body.CloseTime = &closeTime
	}

	return body
}

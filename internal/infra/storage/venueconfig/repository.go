package venueconfig

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/TRP-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// Repository репозиторий для работы с конфигурацией заведения:
// политикой бронирования и недельным расписанием работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPolicy получает политику бронирования заведения
func (r *Repository) GetPolicy(ctx context.Context, venueID int64) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"slot_duration_minutes",
		"reservation_duration_minutes",
		"min_party_size",
		"max_party_size",
		"advance_booking_days",
		"advance_booking_hours",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("venue_booking_policy").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicy - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.BookingPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.VenueID,
		&policy.SlotDurationMinutes,
		&policy.ReservationDurationMinutes,
		&policy.MinPartySize,
		&policy.MaxPartySize,
		&policy.AdvanceBookingDays,
		&policy.AdvanceBookingHours,
		&policy.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicy - scan policy: %v", ErrScanRow, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// UpsertPolicy создает или обновляет политику бронирования заведения
// На заведение приходится одна политика (уникальность по venue_id)
func (r *Repository) UpsertPolicy(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venue_booking_policy").
		Columns(
			"venue_id",
			"slot_duration_minutes",
			"reservation_duration_minutes",
			"min_party_size",
			"max_party_size",
			"advance_booking_days",
			"advance_booking_hours",
			"is_active",
		).
		Values(
			policy.VenueID,
			policy.SlotDurationMinutes,
			policy.ReservationDurationMinutes,
			policy.MinPartySize,
			policy.MaxPartySize,
			policy.AdvanceBookingDays,
			policy.AdvanceBookingHours,
			policy.IsActive,
		).
		Suffix(`ON CONFLICT (venue_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			reservation_duration_minutes = EXCLUDED.reservation_duration_minutes,
			min_party_size = EXCLUDED.min_party_size,
			max_party_size = EXCLUDED.max_party_size,
			advance_booking_days = EXCLUDED.advance_booking_days,
			advance_booking_hours = EXCLUDED.advance_booking_hours,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertPolicy - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertPolicy - execute upsert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// GetWeekSchedule получает недельное расписание работы заведения
// Дни недели без строки в БД считаются выходными.
// Если у заведения нет ни одной строки расписания, возвращает ErrScheduleNotFound.
func (r *Repository) GetWeekSchedule(ctx context.Context, venueID int64) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("venue_hours").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedule domain.WeekSchedule
	found := false

	for rows.Next() {
		var weekday int
		var day domain.DaySchedule
		var openTime, closeTime sql.NullString

		if err := rows.Scan(&weekday, &day.IsOpen, &openTime, &closeTime); err != nil {
			return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - scan row: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			ts, err := types.NewTimeStringFromString(trimSeconds(openTime.String))
			if err != nil {
				return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - parse open_time: %v", ErrScanRow, err)
			}
			day.OpenTime = &ts
		}
		if closeTime.Valid {
			ts, err := types.NewTimeStringFromString(trimSeconds(closeTime.String))
			if err != nil {
				return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - parse close_time: %v", ErrScanRow, err)
			}
			day.CloseTime = &ts
		}

		setWeekday(&schedule, time.Weekday(weekday), day)
		found = true
	}

	if err := rows.Err(); err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return domain.WeekSchedule{}, ErrScheduleNotFound
	}

	return schedule, nil
}

// ReplaceWeekSchedule полностью заменяет недельное расписание заведения
// Выполняется как delete+insert; вызывающая сторона оборачивает в транзакцию
func (r *Repository) ReplaceWeekSchedule(ctx context.Context, venueID int64, schedule domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("venue_hours").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeekSchedule - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeekSchedule - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("venue_hours").
		Columns("venue_id", "weekday", "is_open", "open_time", "close_time")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := dayByWeekday(schedule, weekday)
		insertBuilder = insertBuilder.Values(venueID, int(weekday), day.IsOpen, day.OpenTime, day.CloseTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeekSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeekSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func setWeekday(schedule *domain.WeekSchedule, weekday time.Weekday, day domain.DaySchedule) {
	switch weekday {
	case time.Monday:
		schedule.Monday = day
	case time.Tuesday:
		schedule.Tuesday = day
	case time.Wednesday:
		schedule.Wednesday = day
	case time.Thursday:
		schedule.Thursday = day
	case time.Friday:
		schedule.Friday = day
	case time.Saturday:
		schedule.Saturday = day
	case time.Sunday:
		schedule.Sunday = day
	}
}

func dayByWeekday(schedule domain.WeekSchedule, weekday time.Weekday) domain.DaySchedule {
	switch weekday {
	case time.Monday:
		return schedule.Monday
	case time.Tuesday:
		return schedule.Tuesday
	case time.Wednesday:
		return schedule.Wednesday
	case time.Thursday:
		return schedule.Thursday
	case time.Friday:
		return schedule.Friday
	case time.Saturday:
		return schedule.Saturday
	default:
		return schedule.Sunday
	}
}

// PostgreSQL возвращает TIME как HH:MM:SS
func trimSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

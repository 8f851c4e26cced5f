package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/TRP-AvailabilityService/pkg/psqlbuilder"
)

var tableColumns = []string{
	"id",
	"venue_id",
	"number",
	"capacity",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столами заведений
// Столы управляются админкой платформы; для движка доступности это read-only данные
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Table
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.VenueID,
		&t.Number,
		&t.Capacity,
		&t.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// ListByVenue получает список столов заведения
// activeOnly = true исключает деактивированные столы
func (r *Repository) ListByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("capacity ASC, number ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var t domain.Table
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.VenueID,
			&t.Number,
			&t.Capacity,
			&t.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByVenue - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

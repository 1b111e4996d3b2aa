package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/pkg/dbmetrics"
	"github.com/annecarv/barber-schedule/pkg/psqlbuilder"
	"github.com/annecarv/barber-schedule/pkg/ptr"
)

// Код SQLSTATE unique_violation
const pqUniqueViolation = "23505"

var selectColumns = []string{
	"id",
	"name",
	"email",
	"specialty",
	"active",
	"created_at",
}

// Repository репозиторий мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового мастера.
// Уникальность email обеспечивается constraint-ом таблицы.
func (r *Repository) Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbers").
		Columns("name", "email", "specialty", "active").
		Values(barber.Name, barber.Email, barber.Specialty, barber.Active).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&barber.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	barber.CreatedAt = createdAt.Time

	return barber, nil
}

// GetByID получает мастера по ID независимо от флага active
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetActiveByID получает мастера по ID, только активного.
// Используется при создании бронирования: к неактивному мастеру записаться нельзя.
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "active": true})
}

// List получает список мастеров. activeOnly скрывает мягко удалённых.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("barbers").
		OrderBy("id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		var createdAt sql.NullTime

		err := rows.Scan(&barber.ID, &barber.Name, &barber.Email, &barber.Specialty, &barber.Active, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		barber.CreatedAt = createdAt.Time
		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return barbers, nil
}

// Update частично обновляет мастера, nil-поля не изменяются
func (r *Repository) Update(ctx context.Context, id int64, update domain.BarberUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("barbers").Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", *update.Email)
	}
	if update.Specialty != nil {
		updateBuilder = updateBuilder.Set("specialty", *update.Specialty)
	}
	if update.Active != nil {
		updateBuilder = updateBuilder.Set("active", *update.Active)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBarberNotFound
	}

	return nil
}

// Deactivate мягко удаляет мастера (active=false)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, domain.BarberUpdate{Active: ptr.Ptr(false)})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("barbers").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID, &barber.Name, &barber.Email, &barber.Specialty, &barber.Active, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan barber: %w", ErrScanRow, err)
	}

	barber.CreatedAt = createdAt.Time

	return &barber, nil
}

// isUniqueViolation проверяет нарушение unique constraint Postgres
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/pkg/dbmetrics"
	"github.com/annecarv/barber-schedule/pkg/psqlbuilder"
	"github.com/annecarv/barber-schedule/pkg/ptr"
)

var selectColumns = []string{
	"id",
	"name",
	"duration",
	"price",
	"description",
	"active",
	"created_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу.
// Неизвестный код длительности отклоняется на записи - fallback на 30 минут
// при чтении должен маскировать только legacy-данные, а не новые ошибки.
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if !domain.ValidDurationCode(svc.Duration) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, svc.Duration)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "duration", "price", "description", "active").
		Values(svc.Name, svc.Duration, svc.Price, svc.Description, svc.Active).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time

	return svc, nil
}

// GetByID получает услугу по ID независимо от флага active
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetActiveByID получает услугу по ID, только активную.
// Используется при создании бронирования: на неактивную услугу записаться нельзя.
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "active": true})
}

// List получает список услуг. activeOnly скрывает мягко удалённые.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("services").
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		var createdAt sql.NullTime

		err := rows.Scan(&svc.ID, &svc.Name, &svc.Duration, &svc.Price, &svc.Description, &svc.Active, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// Update частично обновляет услугу, nil-поля не изменяются
func (r *Repository) Update(ctx context.Context, id int64, update domain.ServiceUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	if update.Duration != nil && !domain.ValidDurationCode(*update.Duration) {
		return fmt.Errorf("%w: %q", ErrInvalidDuration, *update.Duration)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("services").Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Duration != nil {
		updateBuilder = updateBuilder.Set("duration", *update.Duration)
	}
	if update.Price != nil {
		updateBuilder = updateBuilder.Set("price", *update.Price)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
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
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Deactivate мягко удаляет услугу (active=false).
// Запись сохраняется, чтобы исторические бронирования не потеряли ссылку.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, domain.ServiceUpdate{Active: ptr.Ptr(false)})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("services").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID, &svc.Name, &svc.Duration, &svc.Price, &svc.Description, &svc.Active, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan service: %w", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time

	return &svc, nil
}

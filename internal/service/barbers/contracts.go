package barbers

import (
	"context"

	"github.com/annecarv/barber-schedule/internal/domain"
)

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Barber, error)
	Update(ctx context.Context, id int64, update domain.BarberUpdate) error
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

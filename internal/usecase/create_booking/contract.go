package create_booking

import (
	"context"

	"github.com/annecarv/barber-schedule/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetActiveByID возвращает услугу только если она существует и активна
	GetActiveByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	// GetActiveByID возвращает мастера только если он существует и активен
	GetActiveByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

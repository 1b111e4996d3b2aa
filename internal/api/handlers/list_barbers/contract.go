package list_barbers

import (
	"context"

	"github.com/annecarv/barber-schedule/internal/service/barbers/models"
)

type BarberService interface {
	List(ctx context.Context, activeOnly bool) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

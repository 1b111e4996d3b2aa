package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/annecarv/barber-schedule/internal/domain"
	serviceRepo "github.com/annecarv/barber-schedule/internal/infra/storage/service"
	"github.com/annecarv/barber-schedule/pkg/types"
)

// UseCase use case для получения доступных времён записи к мастеру на дату.
// Результат пересчитывается на каждый вызов заново, без кэширования:
// при одинаковом наборе бронирований ответ идентичен.
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных времён
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - её код длительности определяет размер кандидата
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableTimes: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	durationMinutes := domain.DurationMinutes(service.Duration)
	if !domain.ValidDurationCode(service.Duration) {
		uc.logger.Warn("GetAvailableTimes: service id=%d has unknown duration code %q, using %d minutes",
			req.ServiceID, service.Duration, durationMinutes)
	}

	// 3. Получаем неотменённые бронирования мастера на дату
	filter := domain.BookingsFilter{
		BarberID:         &req.BarberID,
		Date:             &req.Date,
		ExcludeCancelled: true,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Фильтруем сетку кандидатов: слот доступен, если не пересекается
	// с существующими записями И целиком укладывается до закрытия
	grid := generateTimeSlots()
	available := make([]types.TimeString, 0)
	for _, slot := range grid {
		if !fitsBusinessHours(slot, durationMinutes) {
			continue
		}
		if isSlotAvailable(bookings, slot, durationMinutes) {
			available = append(available, slot)
		}
	}

	uc.logger.Info("GetAvailableTimes: %d of %d slots available for barber=%d, date=%s",
		len(available), len(grid), req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Times:     available,
	}, nil
}

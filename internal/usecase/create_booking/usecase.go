package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/annecarv/barber-schedule/internal/domain"
	barberRepo "github.com/annecarv/barber-schedule/internal/infra/storage/barber"
	serviceRepo "github.com/annecarv/barber-schedule/internal/infra/storage/service"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	barberRepo  BarberRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		barberRepo:  barberRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
// с блокировкой строк расписания (FOR UPDATE): два конкурентных запроса на
// пересекающиеся слоты не могут оба пройти проверку - второй получает
// ErrSlotNotAvailable или serialization failure с повтором.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: barber=%d, service=%d, date=%s, time=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна существовать и быть активной
	service, err := uc.serviceRepo.GetActiveByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found or inactive", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Мастер должен существовать и быть активным
	barber, err := uc.barberRepo.GetActiveByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found or inactive", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	durationMinutes := domain.DurationMinutes(service.Duration)

	var result *domain.Booking

	// 4. Проверка доступности + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Неотменённые бронирования мастера на дату, с блокировкой строк
		filter := domain.BookingsFilter{
			BarberID:         &req.BarberID,
			Date:             &req.Date,
			ExcludeCancelled: true,
		}

		existing, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.2. Интервал нового бронирования не должен пересекаться
		// ни с одной существующей записью
		if !isSlotAvailable(existing, req.StartTime, durationMinutes) {
			uc.logger.Warn("CreateBooking: slot %s (%d min) not available for barber=%d on %s",
				req.StartTime, durationMinutes, req.BarberID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 4.3. Сохраняем бронирование со статусом confirmed
		booking := &domain.Booking{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			ServiceID:     req.ServiceID,
			BarberID:      req.BarberID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Обогащаем ответ уже загруженными услугой и мастером
	return &Response{
		ID:              result.ID,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		ServiceID:       service.ID,
		BarberID:        barber.ID,
		Date:            result.BookingDate,
		StartTime:       result.StartTime,
		Status:          string(result.Status),
		ServiceName:     service.Name,
		ServiceDuration: string(service.Duration),
		ServicePrice:    service.Price,
		BarberName:      barber.Name,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

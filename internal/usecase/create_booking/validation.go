package create_booking

import (
	"fmt"
	"strings"

	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// isSlotAvailable проверяет, что интервал [slotStart, slotStart+durationMinutes)
// не пересекается ни с одним неотменённым бронированием.
// Длительность существующих записей разрешается из кода длительности их услуг.
// Граничные случаи (конец одной записи совпадает с началом другой) пересечением
// не считаются.
func isSlotAvailable(bookings []*domain.Booking, slotStart types.TimeString, durationMinutes int) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	for _, booking := range bookings {
		// Отменённые бронирования никогда не блокируют слот
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := bookingStart.AddMinutes(booking.DurationMinutes())
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return false
		}
	}

	return true
}

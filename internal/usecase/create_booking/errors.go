package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found or inactive")

	// ErrBarberNotFound возвращается, когда мастер не найден или неактивен
	ErrBarberNotFound = errors.New("create_booking: barber not found or inactive")

	// ErrSlotNotAvailable возвращается, когда выбранный слот пересекается
	// с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

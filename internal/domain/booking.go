package domain

import (
	"time"

	"github.com/annecarv/barber-schedule/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer appointment with a barber.
//
// Duration is intentionally NOT stored on the booking: it is always derived
// from the referenced service's duration code at conflict-check time. The
// ServiceDuration field below is filled by the repository from a JOIN,
// never persisted in the bookings table.
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	ServiceID     int64
	BarberID      int64
	BookingDate   time.Time
	StartTime     types.TimeString
	Status        BookingStatus

	// Read-time enrichment from JOINs
	ServiceName     string
	ServiceDuration DurationCode
	ServicePrice    string
	BarberName      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward schedule conflicts.
// Cancelled bookings are permanently excluded; completed ones still occupy
// their historical slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transition is allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking accepts field updates
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusConfirmed
}

// DurationMinutes resolves the booking's effective duration from its
// service's duration code
func (b *Booking) DurationMinutes() int {
	return DurationMinutes(b.ServiceDuration)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	BarberID         *int64         // Фильтр по мастеру (опционально)
	Date             *time.Time     // Фильтр по дате (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	ExcludeCancelled bool           // Исключить отменённые (для расчёта занятости)
}

// BookingUpdate частичное обновление бронирования.
// nil-поля не изменяются.
type BookingUpdate struct {
	Status      *BookingStatus
	BookingDate *time.Time
	StartTime   *types.TimeString
}

// IsEmpty returns true if the update changes nothing
func (u *BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.BookingDate == nil && u.StartTime == nil
}

// ValidBookingStatus returns true for a known status value
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

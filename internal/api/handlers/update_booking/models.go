package update_booking

import (
	"time"

	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/internal/service/bookings/models"
	"github.com/annecarv/barber-schedule/pkg/types"
)

// UpdateBookingRequest HTTP request model, все поля опциональны
type UpdateBookingRequest struct {
	Status      *string `json:"status,omitempty"`
	BookingDate *string `json:"booking_date,omitempty"` // "2025-11-10"
	BookingTime *string `json:"booking_time,omitempty"` // "10:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// (с парсингом даты и времени)
func (r *UpdateBookingRequest) ToServiceRequest() (*models.UpdateBookingRequest, error) {
	req := &models.UpdateBookingRequest{
		Status: r.Status,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.BookingDate = &date
	}

	if r.BookingTime != nil {
		bookingTime, err := types.NewTimeStringFromString(*r.BookingTime)
		if err != nil {
			return nil, err
		}
		req.BookingTime = &bookingTime
	}

	return req, nil
}

package create_booking

import (
	"time"

	"github.com/annecarv/barber-schedule/internal/domain"
	createBooking "github.com/annecarv/barber-schedule/internal/usecase/create_booking"
	"github.com/annecarv/barber-schedule/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	ServiceID     int64   `json:"service_id"`
	BarberID      int64   `json:"barber_id"`
	BookingDate   string  `json:"booking_date"` // "2025-11-10"
	BookingTime   string  `json:"booking_time"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	ServiceID     int64   `json:"service_id"`
	BarberID      int64   `json:"barber_id"`
	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
	Status        string  `json:"status"`

	ServiceName     string `json:"service_name"`
	ServiceDuration string `json:"service_duration"`
	ServicePrice    string `json:"service_price"`
	BarberName      string `json:"barber_name"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		ServiceID:     r.ServiceID,
		BarberID:      r.BarberID,
		Date:          bookingDate,
		StartTime:     bookingTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		ServiceID:       resp.ServiceID,
		BarberID:        resp.BarberID,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		BookingTime:     resp.StartTime.String(),
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServiceDuration: resp.ServiceDuration,
		ServicePrice:    resp.ServicePrice,
		BarberName:      resp.BarberName,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

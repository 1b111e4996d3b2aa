package models

import (
	"errors"
	"time"

	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	BarberID *int64     `json:"barber_id,omitempty"` // Фильтр по мастеру (опционально)
	Date     *time.Time `json:"date,omitempty"`      // Фильтр по дате (опционально)
	Status   *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		BarberID: r.BarberID,
		Date:     r.Date,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на частичное обновление бронирования
type UpdateBookingRequest struct {
	Status      *string           `json:"status,omitempty"`
	BookingDate *time.Time        `json:"booking_date,omitempty"`
	BookingTime *types.TimeString `json:"booking_time,omitempty"`
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.BookingDate == nil && r.BookingTime == nil
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{
		BookingDate: r.BookingDate,
		StartTime:   r.BookingTime,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}

	return update, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	ServiceID     int64   `json:"service_id"`
	BarberID      int64   `json:"barber_id"`
	BookingDate   string  `json:"booking_date"` // "2025-11-10"
	BookingTime   string  `json:"booking_time"` // "10:00"
	Status        string  `json:"status"`

	// Денормализованные данные услуги и мастера
	ServiceName     string `json:"service_name"`
	ServiceDuration string `json:"service_duration"`
	ServicePrice    string `json:"service_price"`
	BarberName      string `json:"barber_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		ServiceID:       b.ServiceID,
		BarberID:        b.BarberID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		BookingTime:     b.StartTime.String(),
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		ServiceDuration: string(b.ServiceDuration),
		ServicePrice:    b.ServicePrice,
		BarberName:      b.BarberName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

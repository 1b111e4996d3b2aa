package models

import (
	"time"

	"github.com/annecarv/barber-schedule/internal/domain"
)

// Request модели

// CreateBarberRequest запрос на добавление мастера
type CreateBarberRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Specialty *string `json:"specialty,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateBarberRequest) ToDomain() *domain.Barber {
	return &domain.Barber{
		Name:      r.Name,
		Email:     r.Email,
		Specialty: r.Specialty,
		Active:    true,
	}
}

// UpdateBarberRequest запрос на частичное обновление мастера
type UpdateBarberRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *UpdateBarberRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Specialty == nil && r.Active == nil
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateBarberRequest) ToDomainUpdate() domain.BarberUpdate {
	return domain.BarberUpdate{
		Name:      r.Name,
		Email:     r.Email,
		Specialty: r.Specialty,
		Active:    r.Active,
	}
}

// Response модели

// BarberResponse ответ с данными мастера
type BarberResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Specialty *string   `json:"specialty,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// BarberListResponse ответ со списком мастеров
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	if b == nil {
		return nil
	}

	return &BarberResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Specialty: b.Specialty,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{
		Barbers: make([]BarberResponse, 0, len(barbers)),
	}

	for _, barber := range barbers {
		if barberResp := FromDomainBarber(barber); barberResp != nil {
			resp.Barbers = append(resp.Barbers, *barberResp)
		}
	}

	return resp
}

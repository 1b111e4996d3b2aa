package models

import (
	"time"

	"github.com/annecarv/barber-schedule/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Duration    string  `json:"duration"` // "30min" | "1h" | "1h30min"
	Price       string  `json:"price"`
	Description *string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		Name:        r.Name,
		Duration:    domain.DurationCode(r.Duration),
		Price:       r.Price,
		Description: r.Description,
		Active:      true,
	}
}

// UpdateServiceRequest запрос на частичное обновление услуги
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Price       *string `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.Name == nil && r.Duration == nil && r.Price == nil &&
		r.Description == nil && r.Active == nil
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	update := domain.ServiceUpdate{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Active:      r.Active,
	}

	if r.Duration != nil {
		code := domain.DurationCode(*r.Duration)
		update.Duration = &code
	}

	return update
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Duration    string    `json:"duration"`
	Price       string    `json:"price"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Duration:    string(s.Duration),
		Price:       s.Price,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	return resp
}

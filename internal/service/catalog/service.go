package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/annecarv/barber-schedule/internal/domain"
	serviceRepo "github.com/annecarv/barber-schedule/internal/infra/storage/service"
	"github.com/annecarv/barber-schedule/internal/service/catalog/models"
)

// Service сервис для управления каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create создает новую услугу. Код длительности обязан входить
// в закрытый набор допустимых значений.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%s, duration=%s", req.Name, req.Duration)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty service name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Price) == "" {
		s.logger.Warn("Create: empty service price")
		return nil, fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	if !domain.ValidDurationCode(domain.DurationCode(req.Duration)) {
		s.logger.Warn("Create: unknown duration code=%s", req.Duration)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, req.Duration)
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID, включая деактивированные
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// List получает список услуг. При activeOnly=true деактивированные
// услуги скрываются.
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, activeOnly=%t", activeOnly)

	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if req.Duration != nil && !domain.ValidDurationCode(domain.DurationCode(*req.Duration)) {
		s.logger.Warn("Update: unknown duration code=%s for service id=%d", *req.Duration, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, *req.Duration)
	}

	if req.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	if err := s.serviceRepo.Update(ctx, id, req.ToDomainUpdate()); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrInvalidDuration):
			s.logger.Warn("Update: invalid duration for service id=%d", id)
			return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, *req.Duration)
		default:
			s.logger.Error("Update: repository error for service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload service: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// Deactivate мягко удаляет услугу (active=false). Существующие
// бронирования сохраняют ссылку на неё.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating service id=%d", id)

	if err := s.serviceRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Deactivate: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Deactivate: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated service id=%d", id)
	return nil
}

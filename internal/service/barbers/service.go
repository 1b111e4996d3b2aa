package barbers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	barberRepo "github.com/annecarv/barber-schedule/internal/infra/storage/barber"
	"github.com/annecarv/barber-schedule/internal/service/barbers/models"
)

// Service сервис для управления реестром мастеров
type Service struct {
	barberRepo BarberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(barberRepo BarberRepository, logger Logger) *Service {
	return &Service{
		barberRepo: barberRepo,
		logger:     logger,
	}
}

// Create добавляет нового мастера. Email уникален в пределах реестра.
func (s *Service) Create(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("Create: creating barber name=%s, email=%s", req.Name, req.Email)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty barber name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		s.logger.Warn("Create: empty barber email")
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	created, err := s.barberRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, barberRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created barber id=%d", created.ID)
	return models.FromDomainBarber(created), nil
}

// GetByID получает мастера по ID, включая деактивированных
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BarberResponse, error) {
	s.logger.Info("GetByID: fetching barber id=%d", id)

	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetByID: barber id=%d not found", id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetByID: repository error for barber id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBarber(barber), nil
}

// List получает список мастеров. При activeOnly=true деактивированные
// мастера скрываются.
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.BarberListResponse, error) {
	s.logger.Info("List: fetching barbers, activeOnly=%t", activeOnly)

	barbers, err := s.barberRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d barbers", len(barbers))
	return models.FromDomainBarberList(barbers), nil
}

// Update частично обновляет мастера
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("Update: updating barber id=%d", id)

	if req.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	if err := s.barberRepo.Update(ctx, id, req.ToDomainUpdate()); err != nil {
		switch {
		case errors.Is(err, barberRepo.ErrBarberNotFound):
			s.logger.Warn("Update: barber id=%d not found", id)
			return nil, ErrBarberNotFound
		case errors.Is(err, barberRepo.ErrEmailTaken):
			s.logger.Warn("Update: email=%s already registered", *req.Email)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("Update: repository error for barber id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload barber id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload barber: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated barber id=%d", id)
	return models.FromDomainBarber(updated), nil
}

// Deactivate мягко удаляет мастера (active=false). Существующие
// бронирования сохраняют ссылку на него.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating barber id=%d", id)

	if err := s.barberRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("Deactivate: barber id=%d not found", id)
			return ErrBarberNotFound
		}
		s.logger.Error("Deactivate: repository error for barber id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated barber id=%d", id)
	return nil
}

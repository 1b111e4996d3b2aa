package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annecarv/barber-schedule/internal/domain"
	serviceRepo "github.com/annecarv/barber-schedule/internal/infra/storage/service"
	"github.com/annecarv/barber-schedule/internal/service/catalog/models"
	"github.com/annecarv/barber-schedule/pkg/ptr"
)

type fakeRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func (f *fakeRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if !domain.ValidDurationCode(svc.Duration) {
		return nil, serviceRepo.ErrInvalidDuration
	}
	f.nextID++
	svc.ID = f.nextID
	f.services[svc.ID] = svc
	return svc, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeRepo) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, svc := range f.services {
		if activeOnly && !svc.Active {
			continue
		}
		result = append(result, svc)
	}
	return result, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, update domain.ServiceUpdate) error {
	svc, ok := f.services[id]
	if !ok {
		return serviceRepo.ErrServiceNotFound
	}
	if update.Duration != nil {
		if !domain.ValidDurationCode(*update.Duration) {
			return serviceRepo.ErrInvalidDuration
		}
		svc.Duration = *update.Duration
	}
	if update.Name != nil {
		svc.Name = *update.Name
	}
	if update.Price != nil {
		svc.Price = *update.Price
	}
	if update.Description != nil {
		svc.Description = update.Description
	}
	if update.Active != nil {
		svc.Active = *update.Active
	}
	return nil
}

func (f *fakeRepo) Deactivate(ctx context.Context, id int64) error {
	return f.Update(ctx, id, domain.ServiceUpdate{Active: ptr.Ptr(false)})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Corte", Duration: domain.Duration30Min, Price: "R$ 40", Active: true},
		2: {ID: 2, Name: "Antiga", Duration: domain.Duration30Min, Price: "R$ 30", Active: false},
	}, nextID: 2}

	return NewService(repo, nopLogger{}), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:     "Corte + Barba",
		Duration: "1h",
		Price:    "R$ 70",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "1h", resp.Duration)
	assert.True(t, resp.Active, "new services are active by default")
	assert.Contains(t, repo.services, int64(3))
}

func TestCreate_UnknownDurationRejected(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:     "Corte",
		Duration: "2h",
		Price:    "R$ 100",
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Duration: "30min", Price: "R$ 40",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateServiceRequest{
		Name: "Corte", Duration: "30min",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_IncludesInactive(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestList_ActiveOnly(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Corte", resp.Services[0].Name)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all.Services, 2)
}

func TestUpdate(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		Duration: ptr.Ptr("1h30min"),
		Price:    ptr.Ptr("R$ 90"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1h30min", resp.Duration)
	assert.Equal(t, "R$ 90", resp.Price)
	assert.Equal(t, domain.Duration1H30, repo.services[1].Duration)
}

func TestUpdate_UnknownDurationRejected(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		Duration: ptr.Ptr("45min"),
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{
		Price: ptr.Ptr("R$ 50"),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeactivate(t *testing.T) {
	svc, repo := newService()

	err := svc.Deactivate(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, repo.services[1].Active)
}

func TestDeactivate_NotFound(t *testing.T) {
	svc, _ := newService()

	err := svc.Deactivate(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

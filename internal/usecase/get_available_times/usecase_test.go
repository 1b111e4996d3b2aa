package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annecarv/barber-schedule/internal/domain"
	serviceRepo "github.com/annecarv/barber-schedule/internal/infra/storage/service"
	"github.com/annecarv/barber-schedule/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Повторяем контракт репозитория: отменённые не возвращаются
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.ExcludeCancelled && b.Status == domain.StatusCancelled {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings []*domain.Booking, services map[int64]*domain.Service) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeServiceRepo{services: services},
		nopLogger{},
	)
}

func testDate() time.Time {
	return time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyDayThirtyMinuteService(t *testing.T) {
	uc := newTestUseCase(nil, map[int64]*domain.Service{
		1: {ID: 1, Name: "Corte", Duration: domain.Duration30Min, Active: true},
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 1, Date: testDate()})
	require.NoError(t, err)

	// Пустой день: все 20 кандидатов от 09:00 до 18:30 доступны
	require.Len(t, resp.Times, 20)
	assert.Equal(t, types.TimeString("09:00"), resp.Times[0])
	assert.Equal(t, types.TimeString("18:30"), resp.Times[19])
}

func TestExecute_NinetyMinuteServiceCutsTail(t *testing.T) {
	uc := newTestUseCase(nil, map[int64]*domain.Service{
		1: {ID: 1, Name: "Corte + Barba", Duration: domain.Duration1H30, Active: true},
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 1, Date: testDate()})
	require.NoError(t, err)

	// Последний допустимый старт 17:30 (конец ровно 19:00); 18:00 и 18:30 отрезаны
	require.NotEmpty(t, resp.Times)
	assert.Equal(t, types.TimeString("17:30"), resp.Times[len(resp.Times)-1])
	assert.NotContains(t, resp.Times, types.TimeString("18:00"))
	assert.NotContains(t, resp.Times, types.TimeString("18:30"))
	assert.Len(t, resp.Times, 18)
}

func TestExecute_ExistingBookingBlocksOverlaps(t *testing.T) {
	existing := []*domain.Booking{
		{StartTime: "10:00", ServiceDuration: domain.Duration1H, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(existing, map[int64]*domain.Service{
		1: {ID: 1, Duration: domain.Duration30Min, Active: true},
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 1, Date: testDate()})
	require.NoError(t, err)

	// [10:00, 11:00) занят: выпадают кандидаты 10:00 и 10:30
	assert.NotContains(t, resp.Times, types.TimeString("10:00"))
	assert.NotContains(t, resp.Times, types.TimeString("10:30"))
	assert.Contains(t, resp.Times, types.TimeString("09:30"))
	assert.Contains(t, resp.Times, types.TimeString("11:00"))
	assert.Len(t, resp.Times, 18)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	existing := []*domain.Booking{
		{StartTime: "10:00", ServiceDuration: domain.Duration1H, Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(existing, map[int64]*domain.Service{
		1: {ID: 1, Duration: domain.Duration30Min, Active: true},
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 1, Date: testDate()})
	require.NoError(t, err)
	assert.Len(t, resp.Times, 20)
}

func TestExecute_ReadIsIdempotent(t *testing.T) {
	existing := []*domain.Booking{
		{StartTime: "14:00", ServiceDuration: domain.Duration1H30, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(existing, map[int64]*domain.Service{
		1: {ID: 1, Duration: domain.Duration1H, Active: true},
	})

	req := &Request{BarberID: 1, ServiceID: 1, Date: testDate()}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Times, second.Times)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(nil, map[int64]*domain.Service{})

	_, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 42, Date: testDate()})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, map[int64]*domain.Service{})

	_, err := uc.Execute(context.Background(), &Request{BarberID: 0, ServiceID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

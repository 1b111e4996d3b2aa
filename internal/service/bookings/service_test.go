package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annecarv/barber-schedule/internal/domain"
	bookingRepo "github.com/annecarv/barber-schedule/internal/infra/storage/booking"
	"github.com/annecarv/barber-schedule/internal/service/bookings/models"
	"github.com/annecarv/barber-schedule/pkg/ptr"
	"github.com/annecarv/barber-schedule/pkg/types"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.BarberID != nil && b.BarberID != *filter.BarberID {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.ExcludeCancelled && b.Status == domain.StatusCancelled {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, update domain.BookingUpdate) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if update.Status != nil {
		b.Status = *update.Status
	}
	if update.BookingDate != nil {
		b.BookingDate = *update.BookingDate
	}
	if update.StartTime != nil {
		b.StartTime = *update.StartTime
	}
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID: 1, CustomerName: "João", ServiceID: 1, BarberID: 1,
			BookingDate: testDate(), StartTime: "10:00",
			Status:      domain.StatusConfirmed,
			ServiceName: "Corte", ServiceDuration: domain.Duration30Min, ServicePrice: "R$ 40",
			BarberName: "Carlos",
		},
		2: {
			ID: 2, CustomerName: "Maria", ServiceID: 2, BarberID: 1,
			BookingDate: testDate(), StartTime: "12:00",
			Status:      domain.StatusCancelled,
			ServiceName: "Corte + Barba", ServiceDuration: domain.Duration1H, ServicePrice: "R$ 70",
			BarberName: "Carlos",
		},
		3: {
			ID: 3, CustomerName: "Pedro", ServiceID: 1, BarberID: 2,
			BookingDate: testDate(), StartTime: "09:00",
			Status:      domain.StatusCompleted,
			ServiceName: "Corte", ServiceDuration: domain.Duration30Min, ServicePrice: "R$ 40",
			BarberName: "Rafael",
		},
	}}

	return NewService(repo, nopLogger{}), repo
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "João", resp.CustomerName)
	assert.Equal(t, "2025-11-10", resp.BookingDate)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Equal(t, "30min", resp.ServiceDuration)
	assert.Equal(t, "Carlos", resp.BarberName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestList_BarberFilter(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		BarberID: ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(3), resp.Bookings[0].ID)
}

func TestList_InvalidStatus(t *testing.T) {
	svc, _ := newService()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_EmptyResultIsNotError(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		BarberID: ptr.Ptr(int64(42)),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	assert.NotNil(t, resp.Bookings, "empty list must serialize as [], not null")
}

func TestUpdate_Reschedule(t *testing.T) {
	svc, repo := newService()

	newTime := types.TimeString("15:30")
	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		BookingTime: &newTime,
	})
	require.NoError(t, err)

	assert.Equal(t, "15:30", resp.BookingTime)
	assert.Equal(t, types.TimeString("15:30"), repo.bookings[1].StartTime)
}

func TestUpdate_StatusToCompleted(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("completed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
}

func TestUpdate_TerminalStatusesImmutable(t *testing.T) {
	svc, _ := newService()

	newTime := types.TimeString("16:00")

	// Отменённое бронирование
	_, err := svc.Update(context.Background(), 2, &models.UpdateBookingRequest{BookingTime: &newTime})
	assert.ErrorIs(t, err, ErrBookingImmutable)

	// Завершённое бронирование
	_, err = svc.Update(context.Background(), 3, &models.UpdateBookingRequest{Status: ptr.Ptr("confirmed")})
	assert.ErrorIs(t, err, ErrBookingImmutable)
}

func TestUpdate_InvalidStatusValue(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("no_show"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate_EmptyRequestReturnsCurrentState(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "10:00", resp.BookingTime)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 99, &models.UpdateBookingRequest{
		Status: ptr.Ptr("completed"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	svc, repo := newService()

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newService()

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_TerminalStatusesRejected(t *testing.T) {
	svc, _ := newService()

	// Повторная отмена
	err := svc.Cancel(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCannotCancel)

	// Завершённое бронирование
	err = svc.Cancel(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/annecarv/barber-schedule/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"customer_name": "João",
	"service_id": 1,
	"barber_id": 1,
	"booking_date": "2025-11-10",
	"booking_time": "10:00"
}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              7,
		CustomerName:    "João",
		ServiceID:       1,
		BarberID:        1,
		Date:            time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Status:          "confirmed",
		ServiceName:     "Corte",
		ServiceDuration: "30min",
		ServicePrice:    "R$ 40",
		BarberName:      "Carlos",
		CreatedAt:       now,
		UpdatedAt:       now,
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-11-10", resp.BookingDate)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Equal(t, "Carlos", resp.BarberName)

	// Дата и время распарсились в модель use case
	require.NotNil(t, uc.got)
	assert.Equal(t, "10:00", uc.got.StartTime.String())
}

func TestHandle_SlotConflict(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrSlotNotAvailable}, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrServiceNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BarberNotFound(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrBarberNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrInvalidInput}, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrInternal}, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"customer_name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got, "use case must not be called")
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"customer_name": "João", "unknown": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateAndTime(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad date", body: `{"customer_name":"João","service_id":1,"barber_id":1,"booking_date":"10-11-2025","booking_time":"10:00"}`},
		{name: "bad time", body: `{"customer_name":"João","service_id":1,"barber_id":1,"booking_date":"2025-11-10","booking_time":"10h"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

package get_available_times

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/pkg/types"
)

func booking(start types.TimeString, duration domain.DurationCode, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartTime:       start,
		ServiceDuration: duration,
		Status:          status,
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := generateTimeSlots()

	// Сетка: 09:00 .. 18:30 с шагом 30 минут
	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("18:30"), slots[19])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "grid must be ascending")
	}
}

func TestFitsBusinessHours(t *testing.T) {
	// 30-минутная услуга помещается с любого кандидата сетки
	assert.True(t, fitsBusinessHours("18:30", 30))

	// 90-минутная: 17:30 заканчивается ровно в 19:00 - проходит, 18:00 и позже - нет
	assert.True(t, fitsBusinessHours("17:30", 90))
	assert.False(t, fitsBusinessHours("18:00", 90))
	assert.False(t, fitsBusinessHours("18:30", 90))

	assert.False(t, fitsBusinessHours("18:00", 61))
}

func TestIsSlotAvailable_EmptySchedule(t *testing.T) {
	assert.True(t, isSlotAvailable(nil, "09:00", 30))
	assert.True(t, isSlotAvailable([]*domain.Booking{}, "18:30", 30))
}

func TestIsSlotAvailable_Overlap(t *testing.T) {
	// Часовая услуга в 10:00 занимает [10:00, 11:00)
	existing := []*domain.Booking{
		booking("10:00", domain.Duration1H, domain.StatusConfirmed),
	}

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{name: "inside occupied interval", start: "10:30", duration: 30, want: false},
		{name: "same start", start: "10:00", duration: 30, want: false},
		{name: "candidate swallows booking", start: "09:30", duration: 90, want: false},
		{name: "overlap at tail", start: "10:30", duration: 90, want: false},
		{name: "ends exactly at booking start", start: "09:00", duration: 60, want: true},
		{name: "starts exactly at booking end", start: "11:00", duration: 30, want: true},
		{name: "well before", start: "09:00", duration: 30, want: true},
		{name: "well after", start: "12:00", duration: 60, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotAvailable(existing, tt.start, tt.duration))
		})
	}
}

func TestIsSlotAvailable_ResolvesTrueDurations(t *testing.T) {
	// Длительность существующей записи берётся из кода длительности её услуги.
	// 90-минутная запись в 10:00 занимает [10:00, 11:30): кандидат в 11:00
	// конфликтует, хотя при фиксированных 30 минутах был бы свободен.
	existing := []*domain.Booking{
		booking("10:00", domain.Duration1H30, domain.StatusConfirmed),
	}

	assert.False(t, isSlotAvailable(existing, "11:00", 30))
	assert.True(t, isSlotAvailable(existing, "11:30", 30))
}

func TestIsSlotAvailable_CancelledNeverBlocks(t *testing.T) {
	existing := []*domain.Booking{
		booking("10:00", domain.Duration1H, domain.StatusCancelled),
	}

	// Запрос ровно на интервал отменённой записи всегда доступен
	assert.True(t, isSlotAvailable(existing, "10:00", 60))
	assert.True(t, isSlotAvailable(existing, "10:30", 30))
}

func TestIsSlotAvailable_CompletedStillBlocks(t *testing.T) {
	existing := []*domain.Booking{
		booking("10:00", domain.Duration1H, domain.StatusCompleted),
	}

	assert.False(t, isSlotAvailable(existing, "10:30", 30))
}

func TestIsSlotAvailable_MultipleBookings(t *testing.T) {
	existing := []*domain.Booking{
		booking("09:00", domain.Duration30Min, domain.StatusConfirmed),
		booking("10:00", domain.Duration1H, domain.StatusConfirmed),
		booking("15:00", domain.Duration1H30, domain.StatusConfirmed),
	}

	assert.True(t, isSlotAvailable(existing, "09:30", 30))
	assert.False(t, isSlotAvailable(existing, "09:30", 60))
	assert.True(t, isSlotAvailable(existing, "11:00", 240))
	assert.False(t, isSlotAvailable(existing, "11:00", 241))
	assert.True(t, isSlotAvailable(existing, "16:30", 150))
}

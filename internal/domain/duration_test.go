package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name string
		code DurationCode
		want int
	}{
		{name: "thirty minutes", code: Duration30Min, want: 30},
		{name: "one hour", code: Duration1H, want: 60},
		{name: "hour and a half", code: Duration1H30, want: 90},
		{name: "unknown code falls back to default", code: "2h", want: DefaultDurationMinutes},
		{name: "empty code falls back to default", code: "", want: DefaultDurationMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.code))
		})
	}
}

func TestValidDurationCode(t *testing.T) {
	assert.True(t, ValidDurationCode(Duration30Min))
	assert.True(t, ValidDurationCode(Duration1H))
	assert.True(t, ValidDurationCode(Duration1H30))
	assert.False(t, ValidDurationCode("45min"))
	assert.False(t, ValidDurationCode(""))
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_Transitions(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.CanBeUpdated())
	assert.False(t, confirmed.IsTerminal())

	for _, status := range []BookingStatus{StatusCancelled, StatusCompleted} {
		b := &Booking{Status: status}
		assert.True(t, b.IsTerminal(), "status %s must be terminal", status)
		assert.False(t, b.CanBeCancelled())
		assert.False(t, b.CanBeUpdated())
	}
}

func TestBooking_DurationMinutes(t *testing.T) {
	b := &Booking{ServiceDuration: Duration1H}
	assert.Equal(t, 60, b.DurationMinutes())

	// Legacy row with a bad code still occupies a minimal slot
	b = &Booking{ServiceDuration: "whatever"}
	assert.Equal(t, DefaultDurationMinutes, b.DurationMinutes())
}

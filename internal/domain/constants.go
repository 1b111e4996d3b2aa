package domain

import "github.com/annecarv/barber-schedule/pkg/types"

// Business hours: the earliest bookable start and the latest time a slot's
// END may reach. The last possible start is constrained by the service
// duration, not fixed.
const (
	OpenTime  types.TimeString = "09:00"
	CloseTime types.TimeString = "19:00"
)

// Slot grid and fallback duration
const (
	SlotStepMinutes        = 30
	DefaultDurationMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

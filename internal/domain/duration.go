package domain

// DurationCode symbolic service duration from a small closed set
type DurationCode string

const (
	Duration30Min DurationCode = "30min"
	Duration1H    DurationCode = "1h"
	Duration1H30  DurationCode = "1h30min"
)

// durationMinutes закрытое отображение кода длительности в минуты
var durationMinutes = map[DurationCode]int{
	Duration30Min: 30,
	Duration1H:    60,
	Duration1H30:  90,
}

// DurationMinutes maps a service duration code to minutes.
//
// An unknown code falls back to DefaultDurationMinutes rather than failing.
// This is a deliberate policy: bookings referencing a service with a bad code
// still occupy a minimal slot instead of disappearing from the schedule.
// Repositories reject unknown codes on write, so the fallback only masks
// legacy rows.
func DurationMinutes(code DurationCode) int {
	if minutes, ok := durationMinutes[code]; ok {
		return minutes
	}
	return DefaultDurationMinutes
}

// ValidDurationCode returns true for a known duration code
func ValidDurationCode(code DurationCode) bool {
	_, ok := durationMinutes[code]
	return ok
}

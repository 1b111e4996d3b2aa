package domain

import "time"

// Barber represents a staff member of the shop. A barber is the scheduling
// unit: bookings referencing different barbers never conflict.
// Deactivation is a soft delete so historical bookings keep a valid reference.
type Barber struct {
	ID        int64
	Name      string
	Email     string
	Specialty *string
	Active    bool
	CreatedAt time.Time
}

// BarberUpdate частичное обновление мастера, nil-поля не изменяются
type BarberUpdate struct {
	Name      *string
	Email     *string
	Specialty *string
	Active    *bool
}

// IsEmpty returns true if the update changes nothing
func (u *BarberUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Specialty == nil && u.Active == nil
}

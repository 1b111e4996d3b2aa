package domain

import "time"

// Service represents an offering from the shop catalog (haircut, beard trim, ...).
// Price is a display string, never used in arithmetic. The duration code is the
// only scheduling-relevant attribute.
type Service struct {
	ID          int64
	Name        string
	Duration    DurationCode
	Price       string
	Description *string
	Active      bool
	CreatedAt   time.Time
}

// ServiceUpdate частичное обновление услуги, nil-поля не изменяются
type ServiceUpdate struct {
	Name        *string
	Duration    *DurationCode
	Price       *string
	Description *string
	Active      *bool
}

// IsEmpty returns true if the update changes nothing
func (u *ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Duration == nil && u.Price == nil &&
		u.Description == nil && u.Active == nil
}

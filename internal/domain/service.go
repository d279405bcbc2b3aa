package domain

import "time"

// Service represents a bookable salon service
type Service struct {
	ID        int64
	CompanyID int64
	Name      string
	Slug      string
	Price     float64

	DurationMinutes   int
	BufferTimeMinutes int // dead time after the service, occupies the professional

	MinAdvanceBookingHours int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalDuration returns the minutes the service occupies in the
// professional's schedule: nominal duration plus buffer time
func (s *Service) TotalDuration() int {
	return s.DurationMinutes + s.BufferTimeMinutes
}

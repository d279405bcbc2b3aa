package domain

import (
	"time"

	"github.com/agendafacil/booking-service/pkg/types"
)

// Company represents a salon tenant with its booking settings.
// The working window is a single open/close pair applied to every day;
// per-weekday schedules and holidays are deliberately not modeled.
type Company struct {
	ID      int64
	OwnerID int64 // user who owns the salon and manages its bookings
	Name    string
	Slug    string

	// Booking settings
	WorkingStartTime       types.TimeOfDay
	WorkingEndTime         types.TimeOfDay
	BookingIntervalMinutes int // slot grid step: 15, 30 or 60
	BookingAdvanceDays     int // how far ahead bookings are accepted
	CancellationHours      int // minimum notice for a cancellation
	Timezone               string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingWindow returns the daily open/close range
func (c *Company) WorkingWindow() (types.TimeRange, error) {
	return types.NewTimeRange(c.WorkingStartTime, c.WorkingEndTime)
}

// Location resolves the company's IANA timezone, falling back to UTC
// when the stored value is empty or unknown
func (c *Company) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

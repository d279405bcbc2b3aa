package domain

import "time"

// CanBeCancelled reports whether the booking may still be cancelled:
// only pending/confirmed bookings whose start is at least
// cancellationHours away. A pure function over booking data so the
// rule is testable without persistence.
func CanBeCancelled(b *Booking, now time.Time, cancellationHours int, loc *time.Location) bool {
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return false
	}
	deadline := b.StartsAt(loc).Add(-time.Duration(cancellationHours) * time.Hour)
	return now.Before(deadline)
}

// CanBeUpdated reports whether the booking's status may still change
// through the regular transition path
func CanBeUpdated(b *Booking) bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusInProgress
}

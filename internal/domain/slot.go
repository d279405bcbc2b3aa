package domain

import "github.com/agendafacil/booking-service/pkg/types"

// Slot is an engine-computed candidate interval, never persisted.
// Start/End cover the nominal service duration; the buffer time is
// accounted for in conflict detection but not shown to clients.
type Slot struct {
	Start     types.TimeOfDay
	End       types.TimeOfDay
	Available bool
}

// Range returns the slot's interval
func (s *Slot) Range() types.TimeRange {
	return types.TimeRange{Start: s.Start, End: s.End}
}

// Package schedule contains the pure slot computation used by both the
// availability read path and the booking write path. Everything here is
// stateless and operates on snapshots passed in by the caller, so it is
// safe to run from any number of concurrent requests.
package schedule

import (
	"github.com/agendafacil/booking-service/internal/domain"
	"github.com/agendafacil/booking-service/pkg/types"
)

// Candidates enumerates every grid-aligned candidate slot of length
// durationMinutes inside the working window, stepping by intervalMinutes.
// No slot whose end would exceed the window's close is emitted; a window
// shorter than the duration yields an empty sequence, not an error.
func Candidates(window types.TimeRange, durationMinutes, intervalMinutes int) []types.TimeRange {
	if durationMinutes <= 0 || intervalMinutes <= 0 {
		return nil
	}

	open := window.Start.Minutes()
	close := window.End.Minutes()

	candidates := make([]types.TimeRange, 0)
	for cursor := open; cursor+durationMinutes <= close; cursor += intervalMinutes {
		start, err := types.TimeOfDayFromMinutes(cursor)
		if err != nil {
			break
		}
		end, err := types.TimeOfDayFromMinutes(cursor + durationMinutes)
		if err != nil {
			break
		}
		candidates = append(candidates, types.TimeRange{Start: start, End: end})
	}

	return candidates
}

// HasConflict reports whether the candidate interval overlaps any of the
// existing intervals. An empty existing set never conflicts.
func HasConflict(candidate types.TimeRange, existing []types.TimeRange) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// IsAvailable is the negation of HasConflict, used to filter slots.
func IsAvailable(candidate types.TimeRange, existing []types.TimeRange) bool {
	return !HasConflict(candidate, existing)
}

// BuildSlots produces the full ordered slot list for a working window,
// flagging each candidate available or not against the existing occupied
// intervals. bufferMinutes extends the span checked for conflicts beyond
// the candidate's visible end (dead time after the service), without
// affecting the grid step or the emitted slot boundaries.
func BuildSlots(window types.TimeRange, durationMinutes, bufferMinutes, intervalMinutes int, existing []types.TimeRange) []domain.Slot {
	candidates := Candidates(window, durationMinutes, intervalMinutes)

	slots := make([]domain.Slot, len(candidates))
	for i, c := range candidates {
		slots[i] = domain.Slot{
			Start:     c.Start,
			End:       c.End,
			Available: !hasConflictBuffered(c, bufferMinutes, existing),
		}
	}

	return slots
}

// hasConflictBuffered checks the candidate plus its trailing buffer
// against the existing intervals. The comparison runs on raw minutes so
// a buffer reaching past midnight clips naturally instead of failing.
func hasConflictBuffered(candidate types.TimeRange, bufferMinutes int, existing []types.TimeRange) bool {
	start := candidate.Start.Minutes()
	end := candidate.End.Minutes() + bufferMinutes

	for _, e := range existing {
		if start < e.End.Minutes() && e.Start.Minutes() < end {
			return true
		}
	}
	return false
}

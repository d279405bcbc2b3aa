package types

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range's end is not after its start.
var ErrInvalidRange = errors.New("types: invalid time range")

// TimeRange is a half-open interval [Start, End) within a single day.
// The zero-length case is rejected at construction, so End is always
// strictly after Start.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeRange creates a TimeRange, rejecting inverted or empty ranges.
func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
// Ranges that only touch at an endpoint do not overlap: a booking
// ending at 10:00 does not conflict with one starting at 10:00.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether Start <= t < End.
func (r TimeRange) Contains(t TimeOfDay) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Duration returns the length of the range in minutes.
func (r TimeRange) Duration() int {
	return r.End.Sub(r.Start)
}

// String formats the range as "HH:MM-HH:MM".
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

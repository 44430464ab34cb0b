package flighttime

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeRange is returned when a departure/arrival pair cannot
// describe a single flight: zero length, out-of-day clocks, or a derived
// duration above the sanity ceiling.
var ErrInvalidTimeRange = errors.New("invalid time range")

// Elapsed computes the block time in minutes between departure and arrival.
// An arrival earlier than the departure is taken as a single midnight
// rollover. ceilingMinutes guards against multi-day data entry mistakes;
// values above it are rejected. A ceiling of zero or less applies the
// one-day default.
func Elapsed(departure, arrival Clock, ceilingMinutes int) (int, error) {
	if !departure.Valid() || !arrival.Valid() {
		return 0, fmt.Errorf("%w: clocks must fall within a single day", ErrInvalidTimeRange)
	}
	if departure == arrival {
		return 0, fmt.Errorf("%w: departure equals arrival", ErrInvalidTimeRange)
	}
	if ceilingMinutes <= 0 {
		ceilingMinutes = MinutesPerDay
	}

	minutes := int(arrival) - int(departure)
	if minutes < 0 {
		// Overnight flight: (24:00 - departure) + arrival.
		minutes += MinutesPerDay
	}

	if minutes > ceilingMinutes {
		return 0, fmt.Errorf("%w: %d minutes exceeds ceiling of %d", ErrInvalidTimeRange, minutes, ceilingMinutes)
	}
	return minutes, nil
}

// Window is a recurring daily interval such as the night period. A window
// whose End is at or before its Start wraps past midnight.
type Window struct {
	Start Clock
	End   Clock
}

// IsZero reports whether the window is unset.
func (w Window) IsZero() bool {
	return w.Start == 0 && w.End == 0
}

// Overlap returns how many minutes of a flight departing at departure and
// lasting elapsedMinutes fall inside the window. The flight interval is laid
// out on a continuous timeline so that a rollover flight meets both the
// previous and the following occurrence of the window.
func (w Window) Overlap(departure Clock, elapsedMinutes int) int {
	if w.IsZero() || elapsedMinutes <= 0 {
		return 0
	}

	start, end := int(w.Start), int(w.End)
	if end <= start {
		end += MinutesPerDay
	}

	flightStart := int(departure)
	flightEnd := flightStart + elapsedMinutes

	overlap := 0
	for offset := -MinutesPerDay; offset <= 2*MinutesPerDay; offset += MinutesPerDay {
		lo := max(flightStart, start+offset)
		hi := min(flightEnd, end+offset)
		if hi > lo {
			overlap += hi - lo
		}
	}
	return overlap
}

package usecase

import (
	"fmt"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/infrastructure/config"
	"wingman-service/pkg/flighttime"
)

// TimeDecomposer derives the total time and the regulatory sub-category
// times of a flight record. Derivation only fills fields the pilot left
// unset; a user-supplied non-zero value is never overwritten.
type TimeDecomposer struct {
	policy config.FlightPolicy
}

// NewTimeDecomposer creates a new time decomposer
func NewTimeDecomposer(policy config.FlightPolicy) *TimeDecomposer {
	return &TimeDecomposer{policy: policy}
}

// derivedTimes is the candidate structure derivation writes into before the
// field-by-field merge. Keeping it separate from the record avoids clobbering
// user input through in-place mutation.
type derivedTimes struct {
	totalTime int
	hasTotal  bool
	nightTime int
	hasNight  bool
}

// Decompose returns a copy of the record with derived time fields filled in.
// aircraft may be nil for legs without an aircraft reference; engine-class
// times are then cleared. The input record is not modified.
func (d *TimeDecomposer) Decompose(record *entity.FlightRecord, aircraft *entity.Aircraft) (*entity.FlightRecord, error) {
	out := *record

	var derived derivedTimes

	if out.TotalTime == 0 {
		minutes, err := flighttime.Elapsed(out.DepartureTime, out.ArrivalTime, d.policy.MaxFlightMinutes)
		if err != nil {
			return nil, err
		}
		derived.totalTime = minutes
		derived.hasTotal = true
	}

	// The effective total anchors the consistency checks on every other
	// derivation.
	total := out.TotalTime
	if derived.hasTotal {
		total = derived.totalTime
	}

	if out.NightTime == 0 && !d.policy.Night.IsZero() {
		elapsed, err := flighttime.Elapsed(out.DepartureTime, out.ArrivalTime, d.policy.MaxFlightMinutes)
		if err != nil {
			return nil, err
		}
		night := d.policy.Night.Overlap(out.DepartureTime, elapsed)
		if night > total {
			return nil, &entity.DecompositionError{
				Field:  "night_time",
				Reason: fmt.Sprintf("derived night time of %d minutes exceeds total time of %d", night, total),
			}
		}
		derived.nightTime = night
		derived.hasNight = true
	}

	// Merge: only genuinely absent fields take the derived value.
	if derived.hasTotal && out.TotalTime == 0 {
		out.TotalTime = derived.totalTime
	}
	if derived.hasNight && out.NightTime == 0 {
		out.NightTime = derived.nightTime
	}

	// Engine-class time follows the aircraft, not the pilot; it is always
	// recomputed so a changed aircraft reference cannot leave stale time
	// on the wrong class.
	switch {
	case aircraft == nil:
		out.SingleEngineTime = 0
		out.MultiEngineTime = 0
	case aircraft.EngineType == entity.EngineMulti:
		out.MultiEngineTime = out.TotalTime
		out.SingleEngineTime = 0
	default:
		out.SingleEngineTime = out.TotalTime
		out.MultiEngineTime = 0
	}

	return &out, nil
}

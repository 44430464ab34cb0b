package usecase

import (
	"fmt"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/infrastructure/config"
	"wingman-service/pkg/flighttime"
)

// FlightValidator enforces structural and cross-field invariants on a
// flight record. Validation is pure: it runs every check, collects every
// violation, and never touches persistence.
type FlightValidator struct {
	policy config.FlightPolicy
}

// NewFlightValidator creates a new flight validator
func NewFlightValidator(policy config.FlightPolicy) *FlightValidator {
	return &FlightValidator{policy: policy}
}

// Validate returns nil when the record satisfies every invariant, or a
// *entity.ValidationError carrying the full ordered list of violations.
func (v *FlightValidator) Validate(record *entity.FlightRecord) error {
	var violations []entity.FieldViolation

	add := func(field, message string) {
		violations = append(violations, entity.FieldViolation{Field: field, Message: message})
	}

	if record.Date.IsZero() {
		add("date", "flight date is required")
	}
	if record.DepartureAerodrome == "" {
		add("departure_aerodrome", "departure aerodrome is required")
	}
	if record.ArrivalAerodrome == "" {
		add("arrival_aerodrome", "arrival aerodrome is required")
	}

	// Temporal consistency. The elapsed duration also anchors the
	// total-time cross-check below.
	elapsed, err := flighttime.Elapsed(record.DepartureTime, record.ArrivalTime, v.policy.MaxFlightMinutes)
	if err != nil {
		add("arrival_time", err.Error())
	} else if record.TotalTime > 0 && record.TotalTime != elapsed {
		add("total_time", fmt.Sprintf("total time %d does not match the %d minutes between departure and arrival", record.TotalTime, elapsed))
	}

	if record.TotalTime < 0 {
		add("total_time", "total time cannot be negative")
	}

	// Component categories may not individually exceed the total.
	components := []struct {
		field   string
		minutes int
	}{
		{"night_time", record.NightTime},
		{"instrument_time", record.InstrumentTime},
		{"cross_country_time", record.CrossCountryTime},
		{"dual_time", record.DualTime},
		{"solo_time", record.SoloTime},
		{"pic_time", record.PICTime},
	}
	for _, c := range components {
		if c.minutes < 0 {
			add(c.field, "component time cannot be negative")
		} else if record.TotalTime > 0 && c.minutes > record.TotalTime {
			add(c.field, fmt.Sprintf("%d minutes exceeds total time of %d", c.minutes, record.TotalTime))
		}
	}

	// Dual and solo are mutually exclusive categories; together they may
	// not exceed the total either.
	if record.TotalTime > 0 && record.DualTime >= 0 && record.SoloTime >= 0 &&
		record.DualTime+record.SoloTime > record.TotalTime {
		msg := fmt.Sprintf("dual and solo time together are %d minutes against a total of %d", record.DualTime+record.SoloTime, record.TotalTime)
		add("dual_time", msg)
		add("solo_time", msg)
	}

	if record.AircraftID == 0 {
		add("aircraft_id", "aircraft reference is required")
	}

	if record.DayLandings < 0 || record.NightLandings < 0 {
		add("landings", "landing counts cannot be negative")
	} else if record.HasAircraft() && record.Landings() < v.policy.MinLandings {
		add("landings", fmt.Sprintf("a completed flight requires at least %d landing(s)", v.policy.MinLandings))
	}

	switch record.Role {
	case entity.RoleDual:
		if record.InstructorName == "" {
			add("instructor_name", "dual instruction requires an instructor of record")
		}
	case entity.RolePIC, entity.RoleSolo:
		if record.InstructorName != "" {
			add("instructor_name", fmt.Sprintf("%s flights must not carry an instructor", record.Role))
		}
	case entity.RoleInstructor:
		// Instructors log their own instruction time; no instructor of
		// record applies.
	default:
		add("role", fmt.Sprintf("unknown pilot role %q", record.Role))
	}

	switch record.Condition {
	case entity.ConditionVFR, entity.ConditionIFR:
	default:
		add("condition", fmt.Sprintf("unknown flight condition %q", record.Condition))
	}

	if len(violations) > 0 {
		return &entity.ValidationError{Violations: violations}
	}
	return nil
}

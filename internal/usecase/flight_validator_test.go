package usecase

import (
	"testing"
	"time"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/infrastructure/config"
	"wingman-service/pkg/flighttime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() config.FlightPolicy {
	return config.FlightPolicy{
		MaxFlightMinutes: flighttime.MinutesPerDay,
		Night: flighttime.Window{
			Start: flighttime.MustClock("21:00"),
			End:   flighttime.MustClock("06:00"),
		},
		MinLandings:  1,
		PageCapacity: 14,
	}
}

func validFlight() *entity.FlightRecord {
	return &entity.FlightRecord{
		ID:                 "f-1",
		PilotID:            "pilot-1",
		Date:               time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		AircraftID:         7,
		DepartureAerodrome: "LFPB",
		ArrivalAerodrome:   "LFPO",
		DepartureTime:      flighttime.MustClock("09:00"),
		ArrivalTime:        flighttime.MustClock("10:00"),
		TotalTime:          60,
		PICTime:            60,
		DayLandings:        1,
		Role:               entity.RolePIC,
		Condition:          entity.ConditionVFR,
	}
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := make([]string, 0, len(validationErr.Violations))
	for _, v := range validationErr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestValidate_ValidRecordPasses(t *testing.T) {
	v := NewFlightValidator(testPolicy())
	assert.NoError(t, v.Validate(validFlight()))
}

func TestValidate_ZeroLengthFlight(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.ArrivalTime = record.DepartureTime
	record.TotalTime = 0

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "arrival_time")
}

func TestValidate_TotalTimeMustMatchElapsed(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.TotalTime = 90 // flight is 60 minutes block to block

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "total_time")
}

func TestValidate_DualPlusSoloExceedingTotal(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.PICTime = 0
	record.DualTime = 40
	record.SoloTime = 30
	record.Role = entity.RoleDual
	record.InstructorName = "J. Martin"

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "dual_time")
	assert.Contains(t, fields, "solo_time")
}

func TestValidate_ComponentExceedingTotal(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.NightTime = 120

	fields := violationFields(t, v.Validate(record))
	assert.Equal(t, []string{"night_time"}, fields)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.AircraftID = 0
	record.NightTime = 120
	record.InstructorName = "J. Martin" // PIC must not carry an instructor
	record.DayLandings = 0

	var validationErr *entity.ValidationError
	require.ErrorAs(t, v.Validate(record), &validationErr)

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "night_time")
	assert.Contains(t, fields, "aircraft_id")
	assert.Contains(t, fields, "instructor_name")
	assert.GreaterOrEqual(t, len(validationErr.Violations), 3)
}

func TestValidate_RoleInstructorConsistency(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	dual := validFlight()
	dual.Role = entity.RoleDual
	dual.PICTime = 0
	dual.DualTime = 60
	fields := violationFields(t, v.Validate(dual))
	assert.Contains(t, fields, "instructor_name")

	dual.InstructorName = "J. Martin"
	assert.NoError(t, v.Validate(dual))

	solo := validFlight()
	solo.Role = entity.RoleSolo
	solo.PICTime = 0
	solo.SoloTime = 60
	solo.InstructorName = "J. Martin"
	fields = violationFields(t, v.Validate(solo))
	assert.Contains(t, fields, "instructor_name")
}

func TestValidate_LandingMinimum(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.DayLandings = 0
	record.NightLandings = 0

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "landings")

	// A night landing alone satisfies the minimum.
	record.NightLandings = 1
	assert.NoError(t, v.Validate(record))
}

func TestValidate_LandingMinimumIsConfigurable(t *testing.T) {
	policy := testPolicy()
	policy.MinLandings = 2
	v := NewFlightValidator(policy)

	record := validFlight()
	record.DayLandings = 1

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "landings")
}

func TestValidate_UnknownRoleAndCondition(t *testing.T) {
	v := NewFlightValidator(testPolicy())

	record := validFlight()
	record.Role = "CAPTAIN"
	record.Condition = "SVFR"

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "condition")
}

func TestValidate_CeilingFromPolicy(t *testing.T) {
	policy := testPolicy()
	policy.MaxFlightMinutes = 120
	v := NewFlightValidator(policy)

	record := validFlight()
	record.ArrivalTime = flighttime.MustClock("14:00") // five hours
	record.TotalTime = 0

	fields := violationFields(t, v.Validate(record))
	assert.Contains(t, fields, "arrival_time")
}

package usecase

import (
	"testing"
	"time"

	"wingman-service/internal/domain/entity"
	"wingman-service/pkg/flighttime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightOn(id string, date time.Time, aircraftID uint, totalTime int) *entity.FlightRecord {
	return &entity.FlightRecord{
		ID:                 id,
		PilotID:            "pilot-1",
		Date:               date,
		AircraftID:         aircraftID,
		DepartureAerodrome: "LFPB",
		ArrivalAerodrome:   "LFPO",
		DepartureTime:      flighttime.MustClock("09:00"),
		ArrivalTime:        flighttime.Clock(int(flighttime.MustClock("09:00")) + totalTime),
		TotalTime:          totalTime,
		PICTime:            totalTime,
		DayLandings:        1,
		Role:               entity.RolePIC,
		Condition:          entity.ConditionVFR,
	}
}

func sampleHistory() []*entity.FlightRecord {
	return []*entity.FlightRecord{
		flightOn("f-3", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), 2, 45),
		flightOn("f-1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 1, 60),
		flightOn("f-2", time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC), 1, 90),
	}
}

func TestAggregate_OverallTotals(t *testing.T) {
	a := NewFlightAggregator()

	summary := a.Aggregate(sampleHistory(), entity.GroupByNone, entity.DateRange{})

	assert.Equal(t, 3, summary.Overall.Flights)
	assert.Equal(t, 195, summary.Overall.TotalTime)
	assert.Equal(t, 195, summary.Overall.PICTime)
	assert.Equal(t, 3, summary.Overall.Landings)
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, summary.Overall, summary.Groups[0].Totals)
}

func TestAggregate_InclusiveDateBounds(t *testing.T) {
	a := NewFlightAggregator()

	dateRange := entity.DateRange{
		From: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
	}
	summary := a.Aggregate(sampleHistory(), entity.GroupByNone, dateRange)

	assert.Equal(t, 2, summary.Overall.Flights)
	assert.Equal(t, 150, summary.Overall.TotalTime)
}

func TestAggregate_EmptyRangeYieldsZeroSummary(t *testing.T) {
	a := NewFlightAggregator()

	dateRange := entity.DateRange{
		From: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	summary := a.Aggregate(sampleHistory(), entity.GroupByAircraft, dateRange)

	assert.Equal(t, entity.CategoryTotals{}, summary.Overall)
	assert.Empty(t, summary.Groups)
}

func TestAggregate_GroupByAircraft(t *testing.T) {
	a := NewFlightAggregator()

	summary := a.Aggregate(sampleHistory(), entity.GroupByAircraft, entity.DateRange{})

	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "1", summary.Groups[0].Key)
	assert.Equal(t, 150, summary.Groups[0].Totals.TotalTime)
	assert.Equal(t, 2, summary.Groups[0].Totals.Flights)
	assert.Equal(t, "2", summary.Groups[1].Key)
	assert.Equal(t, 45, summary.Groups[1].Totals.TotalTime)
}

func TestAggregate_GroupByMonth(t *testing.T) {
	a := NewFlightAggregator()

	summary := a.Aggregate(sampleHistory(), entity.GroupByMonth, entity.DateRange{})

	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "2024-01", summary.Groups[0].Key)
	assert.Equal(t, 150, summary.Groups[0].Totals.TotalTime)
	assert.Equal(t, "2024-02", summary.Groups[1].Key)
	assert.Equal(t, 45, summary.Groups[1].Totals.TotalTime)
}

func TestAggregate_Idempotent(t *testing.T) {
	a := NewFlightAggregator()
	records := sampleHistory()

	first := a.Aggregate(records, entity.GroupByAircraft, entity.DateRange{})
	second := a.Aggregate(records, entity.GroupByAircraft, entity.DateRange{})

	assert.Equal(t, first, second)
}

func TestAggregate_InputOrderDoesNotMatter(t *testing.T) {
	a := NewFlightAggregator()

	records := sampleHistory()
	reversed := []*entity.FlightRecord{records[2], records[1], records[0]}

	assert.Equal(t,
		a.Aggregate(records, entity.GroupByMonth, entity.DateRange{}),
		a.Aggregate(reversed, entity.GroupByMonth, entity.DateRange{}))
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	a := NewFlightAggregator()

	records := sampleHistory()
	firstID := records[0].ID

	a.Aggregate(records, entity.GroupByNone, entity.DateRange{})

	assert.Equal(t, firstID, records[0].ID)
	assert.Equal(t, "f-3", records[0].ID)
}

package entity

import "time"

// GroupBy selects the grouping key for aggregation.
type GroupBy string

const (
	GroupByNone      GroupBy = "none"
	GroupByAircraft  GroupBy = "aircraft"
	GroupByRole      GroupBy = "role"
	GroupByCondition GroupBy = "condition"
	GroupByMonth     GroupBy = "month"
)

// DateRange is an inclusive calendar interval. A zero From or To leaves
// that bound open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// CategoryTotals are summed durations and counts across a set of flights.
// All durations are whole minutes.
type CategoryTotals struct {
	Flights          int
	TotalTime        int
	NightTime        int
	InstrumentTime   int
	CrossCountryTime int
	DualTime         int
	SoloTime         int
	PICTime          int
	Landings         int
}

// Add accumulates one flight record into the totals.
func (t *CategoryTotals) Add(f *FlightRecord) {
	t.Flights++
	t.TotalTime += f.TotalTime
	t.NightTime += f.NightTime
	t.InstrumentTime += f.InstrumentTime
	t.CrossCountryTime += f.CrossCountryTime
	t.DualTime += f.DualTime
	t.SoloTime += f.SoloTime
	t.PICTime += f.PICTime
	t.Landings += f.Landings()
}

// Merge accumulates another set of totals.
func (t *CategoryTotals) Merge(other CategoryTotals) {
	t.Flights += other.Flights
	t.TotalTime += other.TotalTime
	t.NightTime += other.NightTime
	t.InstrumentTime += other.InstrumentTime
	t.CrossCountryTime += other.CrossCountryTime
	t.DualTime += other.DualTime
	t.SoloTime += other.SoloTime
	t.PICTime += other.PICTime
	t.Landings += other.Landings
}

// AggregateGroup is one grouping bucket of a summary.
type AggregateGroup struct {
	Key    string
	Totals CategoryTotals
}

// AggregateSummary is the derived rollup of a record set. It is recomputed
// on demand and never persisted.
type AggregateSummary struct {
	GroupBy GroupBy
	Range   DateRange
	Groups  []AggregateGroup
	Overall CategoryTotals
}

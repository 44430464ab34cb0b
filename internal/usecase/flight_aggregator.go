package usecase

import (
	"sort"
	"strconv"

	"wingman-service/internal/domain/entity"
)

// FlightAggregator rolls a set of flight records up into summary statistics.
// Aggregation is re-entrant and side-effect-free: the same inputs always
// produce the same summary, so callers may cache results themselves.
type FlightAggregator struct{}

// NewFlightAggregator creates a new flight aggregator
func NewFlightAggregator() *FlightAggregator {
	return &FlightAggregator{}
}

// Aggregate filters records to the inclusive date range, groups them by the
// requested key and sums durations and counts per group. An empty range is
// legal and yields an all-zero summary.
func (a *FlightAggregator) Aggregate(records []*entity.FlightRecord, groupBy entity.GroupBy, dateRange entity.DateRange) *entity.AggregateSummary {
	filtered := make([]*entity.FlightRecord, 0, len(records))
	for _, record := range records {
		if dateRange.Contains(record.Date) {
			filtered = append(filtered, record)
		}
	}

	// Deterministic accumulation order: ascending date, then ascending id.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.Before(filtered[j].Date)
		}
		return filtered[i].ID < filtered[j].ID
	})

	summary := &entity.AggregateSummary{
		GroupBy: groupBy,
		Range:   dateRange,
	}

	buckets := make(map[string]int)
	for _, record := range filtered {
		summary.Overall.Add(record)

		key := groupKey(record, groupBy)
		idx, ok := buckets[key]
		if !ok {
			idx = len(summary.Groups)
			buckets[key] = idx
			summary.Groups = append(summary.Groups, entity.AggregateGroup{Key: key})
		}
		summary.Groups[idx].Totals.Add(record)
	}

	sort.SliceStable(summary.Groups, func(i, j int) bool {
		return summary.Groups[i].Key < summary.Groups[j].Key
	})

	return summary
}

// groupKey maps a record to its bucket for the chosen grouping.
func groupKey(record *entity.FlightRecord, groupBy entity.GroupBy) string {
	switch groupBy {
	case entity.GroupByAircraft:
		return strconv.FormatUint(uint64(record.AircraftID), 10)
	case entity.GroupByRole:
		return string(record.Role)
	case entity.GroupByCondition:
		return string(record.Condition)
	case entity.GroupByMonth:
		return record.Date.Format("2006-01")
	default:
		return ""
	}
}

package usecase

import (
	"sort"

	"wingman-service/internal/domain/entity"
)

// LogbookRenderer lays flight records out into fixed-capacity logbook pages
// with running totals carried across page boundaries. The running-total
// accumulator is threaded by value through each page render, so concurrent
// export requests never share state.
type LogbookRenderer struct{}

// NewLogbookRenderer creates a new logbook renderer
func NewLogbookRenderer() *LogbookRenderer {
	return &LogbookRenderer{}
}

// Render sorts records chronologically, chunks them into pages of at most
// pageCapacity rows and threads the running totals through every page.
// The carried-forward totals of the last page equal the full-range
// aggregate over the same records; everything stays in whole minutes.
func (r *LogbookRenderer) Render(records []*entity.FlightRecord, pageCapacity int) ([]entity.LogbookPage, error) {
	if pageCapacity < 1 {
		return nil, entity.ErrPageCapacity
	}
	if len(records) == 0 {
		return nil, entity.ErrEmptyExport
	}

	// Total order: date, then departure time, then id. Required for
	// deterministic carried-forward totals.
	ordered := make([]*entity.FlightRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		if ordered[i].DepartureTime != ordered[j].DepartureTime {
			return ordered[i].DepartureTime < ordered[j].DepartureTime
		}
		return ordered[i].ID < ordered[j].ID
	})

	pageCount := (len(ordered) + pageCapacity - 1) / pageCapacity
	pages := make([]entity.LogbookPage, 0, pageCount)

	var running entity.CategoryTotals
	for start := 0; start < len(ordered); start += pageCapacity {
		end := min(start+pageCapacity, len(ordered))
		page, updated := renderPage(ordered[start:end], len(pages)+1, running)
		pages = append(pages, page)
		running = updated
	}

	return pages, nil
}

// renderPage builds one page from its records and the totals accumulated on
// all prior pages. It returns the page together with the updated accumulator;
// the next page may not be rendered before this value is final.
func renderPage(records []*entity.FlightRecord, number int, broughtForward entity.CategoryTotals) (entity.LogbookPage, entity.CategoryTotals) {
	page := entity.LogbookPage{
		Number:         number,
		Rows:           make([]entity.LogbookRow, 0, len(records)),
		BroughtForward: broughtForward,
	}

	for _, record := range records {
		page.Rows = append(page.Rows, toLogbookRow(record))
		page.Subtotal.Add(record)
	}

	page.CarriedForward = broughtForward
	page.CarriedForward.Merge(page.Subtotal)

	return page, page.CarriedForward
}

// toLogbookRow projects a flight record into its export row.
func toLogbookRow(record *entity.FlightRecord) entity.LogbookRow {
	return entity.LogbookRow{
		FlightID:           record.ID,
		Date:               record.Date,
		AircraftID:         record.AircraftID,
		DepartureAerodrome: record.DepartureAerodrome,
		ArrivalAerodrome:   record.ArrivalAerodrome,
		DepartureTime:      record.DepartureTime,
		ArrivalTime:        record.ArrivalTime,
		TotalTime:          record.TotalTime,
		NightTime:          record.NightTime,
		InstrumentTime:     record.InstrumentTime,
		CrossCountryTime:   record.CrossCountryTime,
		DualTime:           record.DualTime,
		SoloTime:           record.SoloTime,
		PICTime:            record.PICTime,
		Landings:           record.Landings(),
		Role:               record.Role,
		Condition:          record.Condition,
		Remarks:            record.Remarks,
	}
}

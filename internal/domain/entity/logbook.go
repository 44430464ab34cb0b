package entity

import (
	"time"

	"wingman-service/pkg/flighttime"
)

// LogbookRow is the export projection of one flight record. AircraftLabel
// is resolved by the export layer from the aircraft directory.
type LogbookRow struct {
	FlightID      string
	Date          time.Time
	AircraftID    uint
	AircraftLabel string

	DepartureAerodrome string
	ArrivalAerodrome   string
	DepartureTime      flighttime.Clock
	ArrivalTime        flighttime.Clock

	TotalTime        int
	NightTime        int
	InstrumentTime   int
	CrossCountryTime int
	DualTime         int
	SoloTime         int
	PICTime          int
	Landings         int

	Role      PilotRole
	Condition FlightCondition
	Remarks   string
}

// LogbookPage is one fixed-capacity page of a logbook export. BroughtForward
// holds the running totals entering the page, Subtotal the page's own sums,
// and CarriedForward the running totals leaving it.
type LogbookPage struct {
	Number         int
	Rows           []LogbookRow
	BroughtForward CategoryTotals
	Subtotal       CategoryTotals
	CarriedForward CategoryTotals
}

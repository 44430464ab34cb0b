package templates

import (
	"strings"
	"testing"
	"time"

	"wingman-service/internal/domain/entity"
	"wingman-service/pkg/flighttime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage() entity.LogbookPage {
	row := entity.LogbookRow{
		FlightID:           "f-1",
		Date:               time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		AircraftID:         7,
		AircraftLabel:      "F-GABC - Cessna 152",
		DepartureAerodrome: "LFPB",
		ArrivalAerodrome:   "LFPO",
		DepartureTime:      flighttime.MustClock("09:00"),
		ArrivalTime:        flighttime.MustClock("10:00"),
		TotalTime:          60,
		PICTime:            60,
		Landings:           1,
		Role:               entity.RolePIC,
		Condition:          entity.ConditionVFR,
	}

	page := entity.LogbookPage{
		Number: 1,
		Rows:   []entity.LogbookRow{row},
	}
	page.Subtotal = entity.CategoryTotals{Flights: 1, TotalTime: 60, PICTime: 60, Landings: 1}
	page.CarriedForward = page.Subtotal
	return page
}

func TestBuildLogbookDocument(t *testing.T) {
	pilot := PilotHeader{Name: "Jean Dupont", LicenseType: "PPL", LicenseNumber: "FR-123"}

	doc := BuildLogbookDocument(pilot, []entity.LogbookPage{samplePage()})

	assert.Contains(t, doc, "PILOT LOGBOOK - Jean Dupont")
	assert.Contains(t, doc, "License: PPL FR-123")
	assert.Contains(t, doc, "PAGE 1")
	assert.Contains(t, doc, "2024-03-10")
	assert.Contains(t, doc, "F-GABC - Cessna 152")
	assert.Contains(t, doc, "LFPB")
	assert.Contains(t, doc, "01:00")
	assert.Contains(t, doc, "TOTALS TO DATE: 01:00 flight time over 1 flights, 1 landings")

	// Totals rows appear in page order.
	brought := strings.Index(doc, "BROUGHT FORWARD")
	subtotal := strings.Index(doc, "PAGE SUBTOTAL")
	carried := strings.Index(doc, "CARRIED FORWARD")
	require.True(t, brought >= 0 && subtotal >= 0 && carried >= 0)
	assert.Less(t, brought, subtotal)
	assert.Less(t, subtotal, carried)
}

func TestBuildLogbookDocument_MissingLabelFallsBackToID(t *testing.T) {
	page := samplePage()
	page.Rows[0].AircraftLabel = ""

	doc := BuildLogbookDocument(PilotHeader{Name: "Jean Dupont"}, []entity.LogbookPage{page})
	assert.Contains(t, doc, "#7")
	assert.NotContains(t, doc, "License:")
}

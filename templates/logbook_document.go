package templates

import (
	"fmt"
	"strings"

	"wingman-service/internal/domain/entity"
	"wingman-service/pkg/flighttime"
)

// PilotHeader is the identity block printed at the top of a logbook
// document. It comes from the profile collaborator, not from this core.
type PilotHeader struct {
	Name          string
	LicenseType   string
	LicenseNumber string
	Email         string
}

const rowFormat = "%-10s  %-22s  %-5s  %-5s  %7s  %7s  %7s  %7s  %7s  %4s  %-10s  %-4s\n"

// BuildLogbookDocument renders pages into a fixed-width printable logbook
// document. Layout only; every figure is taken verbatim from the pages.
func BuildLogbookDocument(pilot PilotHeader, pages []entity.LogbookPage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PILOT LOGBOOK - %s\n", pilot.Name)
	if pilot.LicenseType != "" || pilot.LicenseNumber != "" {
		fmt.Fprintf(&b, "License: %s %s\n", pilot.LicenseType, pilot.LicenseNumber)
	}
	b.WriteString("\n")

	for _, page := range pages {
		writePage(&b, page)
	}

	if len(pages) > 0 {
		final := pages[len(pages)-1].CarriedForward
		fmt.Fprintf(&b, "TOTALS TO DATE: %s flight time over %d flights, %d landings\n",
			flighttime.FormatMinutes(final.TotalTime), final.Flights, final.Landings)
	}

	return b.String()
}

func writePage(b *strings.Builder, page entity.LogbookPage) {
	fmt.Fprintf(b, "PAGE %d\n", page.Number)
	fmt.Fprintf(b, rowFormat,
		"DATE", "AIRCRAFT", "FROM", "TO", "TOTAL", "NIGHT", "XC", "INSTR", "PIC", "LDG", "ROLE", "COND")
	b.WriteString(strings.Repeat("-", 118) + "\n")

	writeTotals(b, "BROUGHT FORWARD", page.BroughtForward)

	for _, row := range page.Rows {
		aircraft := row.AircraftLabel
		if aircraft == "" {
			aircraft = fmt.Sprintf("#%d", row.AircraftID)
		}
		fmt.Fprintf(b, rowFormat,
			row.Date.Format("2006-01-02"),
			aircraft,
			row.DepartureAerodrome,
			row.ArrivalAerodrome,
			flighttime.FormatMinutes(row.TotalTime),
			flighttime.FormatMinutes(row.NightTime),
			flighttime.FormatMinutes(row.CrossCountryTime),
			flighttime.FormatMinutes(row.InstrumentTime),
			flighttime.FormatMinutes(row.PICTime),
			fmt.Sprintf("%d", row.Landings),
			string(row.Role),
			string(row.Condition))
	}

	writeTotals(b, "PAGE SUBTOTAL", page.Subtotal)
	writeTotals(b, "CARRIED FORWARD", page.CarriedForward)
	b.WriteString("\n")
}

func writeTotals(b *strings.Builder, label string, totals entity.CategoryTotals) {
	fmt.Fprintf(b, rowFormat,
		"",
		label,
		"",
		"",
		flighttime.FormatMinutes(totals.TotalTime),
		flighttime.FormatMinutes(totals.NightTime),
		flighttime.FormatMinutes(totals.CrossCountryTime),
		flighttime.FormatMinutes(totals.InstrumentTime),
		flighttime.FormatMinutes(totals.PICTime),
		fmt.Sprintf("%d", totals.Landings),
		"",
		"")
}

// internal/domain/entity/flight.go
package entity

import (
	"time"

	"wingman-service/pkg/flighttime"
)

// PilotRole is the capacity the pilot flew in.
type PilotRole string

const (
	RolePIC        PilotRole = "PIC"
	RoleDual       PilotRole = "DUAL"
	RoleSolo       PilotRole = "SOLO"
	RoleInstructor PilotRole = "INSTRUCTOR"
)

// FlightCondition is the flight rules the leg was conducted under.
type FlightCondition string

const (
	ConditionVFR FlightCondition = "VFR"
	ConditionIFR FlightCondition = "IFR"
)

// FlightRecord is one logged flight. Times of day are local to the flight
// and carry no timezone; all durations are whole minutes.
type FlightRecord struct {
	ID      string    `bson:"_id,omitempty"`
	PilotID string    `bson:"pilotId"`
	Date    time.Time `bson:"date"`

	AircraftID uint `bson:"aircraftId,omitempty"`

	DepartureAerodrome string `bson:"departureAerodrome"`
	ArrivalAerodrome   string `bson:"arrivalAerodrome"`

	DepartureTime flighttime.Clock `bson:"departureTime"`
	ArrivalTime   flighttime.Clock `bson:"arrivalTime"`
	TotalTime     int              `bson:"totalTime"`

	NightTime        int `bson:"nightTime"`
	InstrumentTime   int `bson:"instrumentTime"`
	CrossCountryTime int `bson:"crossCountryTime"`
	DualTime         int `bson:"dualTime"`
	SoloTime         int `bson:"soloTime"`
	PICTime          int `bson:"picTime"`

	SingleEngineTime int `bson:"singleEngineTime"`
	MultiEngineTime  int `bson:"multiEngineTime"`

	DayLandings   int `bson:"dayLandings"`
	NightLandings int `bson:"nightLandings"`

	Role           PilotRole       `bson:"role"`
	Condition      FlightCondition `bson:"condition"`
	InstructorName string          `bson:"instructorName,omitempty"`
	Remarks        string          `bson:"remarks,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Landings is the combined day and night landing count.
func (f *FlightRecord) Landings() int {
	return f.DayLandings + f.NightLandings
}

// IsCrossCountry reports whether the leg ended away from its departure
// point. Explicit cross-country time also marks the flight.
func (f *FlightRecord) IsCrossCountry() bool {
	if f.CrossCountryTime > 0 {
		return true
	}
	return f.DepartureAerodrome != f.ArrivalAerodrome
}

// HasAircraft reports whether the record references an aircraft. Records
// without one are simulator-style legs and are exempt from the landing
// minimum.
func (f *FlightRecord) HasAircraft() bool {
	return f.AircraftID != 0
}

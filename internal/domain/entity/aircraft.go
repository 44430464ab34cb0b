package entity

import (
	"time"

	"gorm.io/gorm"
)

// EngineType is the engine configuration of an aircraft.
type EngineType string

const (
	EngineSingle EngineType = "SINGLE"
	EngineMulti  EngineType = "MULTI"
)

// Aircraft represents an aircraft in the directory
type Aircraft struct {
	ID           uint
	Registration string
	Type         string
	Manufacturer string
	EngineType   EngineType
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
}

// Label is the display form used on exports and dashboards.
func (a *Aircraft) Label() string {
	if a.Type == "" {
		return a.Registration
	}
	return a.Registration + " - " + a.Type
}

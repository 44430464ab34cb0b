package repository

import (
	"context"

	"wingman-service/internal/domain/entity"
)

// FlightRepository defines the interface for the flight record store
type FlightRepository interface {
	Insert(ctx context.Context, record *entity.FlightRecord) error
	Update(ctx context.Context, record *entity.FlightRecord) error
	FindByID(ctx context.Context, id string) (*entity.FlightRecord, error)
	// FindByPilot returns all of a pilot's flights inside the range,
	// optionally narrowed to one aircraft (aircraftID zero means any).
	FindByPilot(ctx context.Context, pilotID string, dateRange entity.DateRange, aircraftID uint) ([]*entity.FlightRecord, error)
	Delete(ctx context.Context, id string) error
}

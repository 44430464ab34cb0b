package repository

import (
	"context"

	"wingman-service/internal/domain/entity"
)

// AircraftRepository defines the interface for the aircraft directory
type AircraftRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Aircraft, error)
	GetByRegistration(ctx context.Context, registration string) (*entity.Aircraft, error)
	List(ctx context.Context) ([]*entity.Aircraft, error)
}

package repository

import (
	"context"
	"time"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAircraftRepository implements the AircraftRepository interface
type GormAircraftRepository struct {
	db *gorm.DB
}

// NewGormAircraftRepository creates a new GORM aircraft repository
func NewGormAircraftRepository(db *gorm.DB) repository.AircraftRepository {
	return &GormAircraftRepository{
		db: db,
	}
}

// Aircrafts GORM model for database mapping
type Aircrafts struct {
	gorm.Model
	ID           uint           `gorm:"primaryKey"`
	Registration string         `gorm:"column:registration;unique"`
	Type         string         `gorm:"column:type"`
	Manufacturer string         `gorm:"column:manufacturer"`
	EngineType   string         `gorm:"column:engine_type"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Aircrafts) TableName() string {
	return "m_aircraft"
}

// GetByID finds an aircraft by primary key
func (r *GormAircraftRepository) GetByID(ctx context.Context, id uint) (*entity.Aircraft, error) {
	var aircraft Aircrafts
	result := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&aircraft)

	if result.Error != nil {
		return nil, result.Error
	}

	return toAircraftEntity(&aircraft), nil
}

// GetByRegistration finds an aircraft by registration
func (r *GormAircraftRepository) GetByRegistration(ctx context.Context, registration string) (*entity.Aircraft, error) {
	var aircraft Aircrafts
	result := r.db.WithContext(ctx).Unscoped().Where("registration = ?", registration).First(&aircraft)

	if result.Error != nil {
		return nil, result.Error
	}

	return toAircraftEntity(&aircraft), nil
}

// List returns all aircraft ordered by registration
func (r *GormAircraftRepository) List(ctx context.Context) ([]*entity.Aircraft, error) {
	var aircraft []Aircrafts
	result := r.db.WithContext(ctx).Order("registration").Find(&aircraft)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.Aircraft, len(aircraft))
	for i := range aircraft {
		entities[i] = toAircraftEntity(&aircraft[i])
	}
	return entities, nil
}

// Convert GORM model to domain entity
func toAircraftEntity(a *Aircrafts) *entity.Aircraft {
	return &entity.Aircraft{
		ID:           a.ID,
		Registration: a.Registration,
		Type:         a.Type,
		Manufacturer: a.Manufacturer,
		EngineType:   entity.EngineType(a.EngineType),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		DeletedAt:    a.DeletedAt,
	}
}

package repository

import (
	"errors"

	"lead-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByTuple retrieves a location by its full natural key. Absent fields
// must match stored NULLs, hence IS NOT DISTINCT FROM.
func (r *LocationRepository) GetByTuple(region, country, state, city *string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where(
		"region IS NOT DISTINCT FROM ? AND country IS NOT DISTINCT FROM ? AND state IS NOT DISTINCT FROM ? AND city IS NOT DISTINCT FROM ?",
		region, country, state, city,
	).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// FindOrCreate looks up a location by its (region, country, state, city)
// tuple and creates it when missing. The existing row, if any, is copied
// into the argument. Assumes single-writer batch execution; the composite
// unique index rejects duplicates that would slip through otherwise.
func (r *LocationRepository) FindOrCreate(location *models.Location) error {
	existing, err := r.GetByTuple(location.Region, location.Country, location.State, location.City)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(location).Error
		}
		return err
	}
	*location = *existing
	return nil
}

package repository

import (
	"lead-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByZohoID retrieves a lead by its external CRM record id
func (r *LeadRepository) GetByZohoID(zohoID string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "zoho_id = ?", zohoID).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ExistsByZohoID checks whether a lead with the given external id is already persisted
func (r *LeadRepository) ExistsByZohoID(zohoID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Where("zoho_id = ?", zohoID).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all leads with pagination
func (r *LeadRepository) GetAll(limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

package repository

import (
	"lead-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByTuple(region, country, state, city *string) (*models.Location, error)
	FindOrCreate(location *models.Location) error
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	FindOrCreate(company *models.Company) error
	GetAll(limit, offset int) ([]models.Company, int64, error)
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetByZohoID(zohoID string) (*models.Lead, error)
	ExistsByZohoID(zohoID string) (bool, error)
	GetAll(limit, offset int) ([]models.Lead, int64, error)
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetByLeadID(leadID uuid.UUID) ([]models.Contact, error)
}

// SummaryRepositoryInterface defines the read-only aggregations used by the summary reporter
type SummaryRepositoryInterface interface {
	LeadsPerCompany() ([]CompanyLeadCount, error)
	LeadCountsByStatus() ([]LabelCount, error)
	LeadCountsByType() ([]LabelCount, error)
	TotalLeads() (int64, error)
	TotalContacts() (int64, error)
	ContactsWithEmail() (int64, error)
	TopContactTitles(limit int) ([]LabelCount, error)
	LocationCountsByRegion() ([]LabelCount, error)
}

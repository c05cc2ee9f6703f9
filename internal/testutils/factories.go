package testutils

import (
	"fmt"
	"time"

	"lead-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

func ptr(s string) *string { return &s }

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Region:    ptr("North America"),
		Country:   ptr("United States"),
		State:     ptr("California"),
		City:      ptr("San Diego"),
	}
}

// WithCountry sets a custom country, leaving the rest of the tuple absent
func (f *LocationFactory) WithCountry(country string) *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Country:   ptr(country),
	}
}

// Empty creates the all-absent location tuple
func (f *LocationFactory) Empty() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{ID: uuid.New()},
	}
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	return &models.Company{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Company " + uuid.New().String()[:8],
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// WithLocation links the company to a location
func (f *CompanyFactory) WithLocation(locationID uuid.UUID) *models.Company {
	company := f.Create()
	company.LocationID = &locationID
	return company
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct {
	counter int
}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with a unique zoho id
func (f *LeadFactory) Create() *models.Lead {
	f.counter++
	return &models.Lead{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		ZohoID:     fmt.Sprintf("zoho-%s-%d", uuid.New().String()[:8], f.counter),
		LeadStatus: ptr("Hot"),
		LeadType:   ptr("Inbound"),
	}
}

// WithZohoID sets a custom zoho id for the lead
func (f *LeadFactory) WithZohoID(zohoID string) *models.Lead {
	lead := f.Create()
	lead.ZohoID = zohoID
	return lead
}

// WithCompany links the lead to a company
func (f *LeadFactory) WithCompany(companyID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.CompanyID = &companyID
	return lead
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact for the given lead
func (f *ContactFactory) Create(leadID uuid.UUID) *models.Contact {
	return &models.Contact{
		BaseModel: models.BaseModel{ID: uuid.New()},
		LeadID:    leadID,
		FullName:  ptr("Jane Doe"),
		Title:     ptr("CEO"),
		Email:     ptr("jane.doe@test.com"),
	}
}

// WithoutEmail creates a contact without an email address
func (f *ContactFactory) WithoutEmail(leadID uuid.UUID) *models.Contact {
	contact := f.Create(leadID)
	contact.Email = nil
	return contact
}

package repository

import (
	"lead-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// CompanyLeadCount pairs a company name with its number of leads
type CompanyLeadCount struct {
	Name      string `json:"name"`
	LeadCount int64  `json:"lead_count"`
}

// LabelCount is a generic grouped count; Label is empty for NULL groups
type LabelCount struct {
	Label *string `json:"label"`
	Count int64   `json:"count"`
}

// SummaryRepository runs the read-only aggregations behind the database summary.
// It never writes.
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// LeadsPerCompany returns every company with its lead count, most leads first
func (r *SummaryRepository) LeadsPerCompany() ([]CompanyLeadCount, error) {
	var results []CompanyLeadCount
	err := r.db.Model(&models.Company{}).
		Select("companies.name, COUNT(leads.id) AS lead_count").
		Joins("LEFT JOIN leads ON leads.company_id = companies.id").
		Group("companies.id").
		Order("COUNT(leads.id) DESC").
		Scan(&results).Error
	return results, err
}

// LeadCountsByStatus returns lead counts grouped by lead_status
func (r *SummaryRepository) LeadCountsByStatus() ([]LabelCount, error) {
	var results []LabelCount
	err := r.db.Model(&models.Lead{}).
		Select("lead_status AS label, COUNT(id) AS count").
		Group("lead_status").
		Scan(&results).Error
	return results, err
}

// LeadCountsByType returns lead counts grouped by lead_type
func (r *SummaryRepository) LeadCountsByType() ([]LabelCount, error) {
	var results []LabelCount
	err := r.db.Model(&models.Lead{}).
		Select("lead_type AS label, COUNT(id) AS count").
		Group("lead_type").
		Scan(&results).Error
	return results, err
}

// TotalLeads returns the total number of leads
func (r *SummaryRepository) TotalLeads() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Count(&count).Error
	return count, err
}

// TotalContacts returns the total number of contacts
func (r *SummaryRepository) TotalContacts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}

// ContactsWithEmail returns the number of contacts that have an email address
func (r *SummaryRepository) ContactsWithEmail() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Where("email IS NOT NULL").Count(&count).Error
	return count, err
}

// TopContactTitles returns the most common contact titles
func (r *SummaryRepository) TopContactTitles(limit int) ([]LabelCount, error) {
	var results []LabelCount
	err := r.db.Model(&models.Contact{}).
		Select("title AS label, COUNT(id) AS count").
		Group("title").
		Order("COUNT(id) DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

// LocationCountsByRegion returns location counts grouped by region
func (r *SummaryRepository) LocationCountsByRegion() ([]LabelCount, error) {
	var results []LabelCount
	err := r.db.Model(&models.Location{}).
		Select("region AS label, COUNT(id) AS count").
		Group("region").
		Scan(&results).Error
	return results, err
}

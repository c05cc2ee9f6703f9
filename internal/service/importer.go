package service

import (
	"fmt"
	"io"
	"strings"

	"lead-portal-backend/internal/database/models"
	"lead-portal-backend/internal/logger"
	"lead-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Recognized CSV columns. Unrecognized columns are ignored; missing ones
// yield absent values on every row.
const (
	colRecordID    = "Record Id"
	colAccountName = "Account Name"
	colFirstName   = "First Name"
	colLastName    = "Last Name"
	colEmail       = "Email"
	colTitle       = "Title"
	colCountry     = "Mailing Country"
	colState       = "Mailing State"
	colCity        = "Mailing City"
	colLeadQuality = "Lead Quality"
	colLeadType    = "Lead Type"
)

// ImportResult reports the outcome of one import run
type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// ImportRepos bundles the repositories an import run writes through.
// All of them must be bound to the same transaction.
type ImportRepos struct {
	Locations repository.LocationRepositoryInterface
	Companies repository.CompanyRepositoryInterface
	Leads     repository.LeadRepositoryInterface
	Contacts  repository.ContactRepositoryInterface
}

// ImportService normalizes tabular lead exports and loads them into the
// relational schema: locations, companies, leads and contacts, linked in
// dependency order with get-or-create semantics.
type ImportService struct {
	db       *gorm.DB
	validate *validator.Validate
	log      *logger.Logger
}

// NewImportService creates a new import service
func NewImportService(db *gorm.DB, validate *validator.Validate) *ImportService {
	return &ImportService{
		db:       db,
		validate: validate,
		log:      logger.New(),
	}
}

// ImportCSV parses and normalizes a CSV stream and imports every row.
// The whole run is one unit of work: any store error rolls the entire
// batch back, and intermediate lookups read the transaction's own
// uncommitted state.
func (s *ImportService) ImportCSV(r io.Reader) (*ImportResult, error) {
	table, err := ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("normalize csv: %w", err)
	}

	var result *ImportResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repos := ImportRepos{
			Locations: repository.NewLocationRepository(tx),
			Companies: repository.NewCompanyRepository(tx),
			Leads:     repository.NewLeadRepository(tx),
			Contacts:  repository.NewContactRepository(tx),
		}
		var importErr error
		result, importErr = s.ImportTable(repos, table)
		return importErr
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"created": result.Created,
		"skipped": result.Skipped,
	}).Info("import complete")

	return result, nil
}

// ImportTable runs the per-row import state machine over a normalized
// table. Terminal outcomes per row are created or skipped; rows are
// skipped when the external record id is missing or already persisted.
func (s *ImportService) ImportTable(repos ImportRepos, table *Table) (*ImportResult, error) {
	result := &ImportResult{}

	for _, row := range table.Rows {
		zohoID := row.Get(colRecordID)
		if zohoID == nil {
			result.Skipped++
			continue
		}

		exists, err := repos.Leads.ExistsByZohoID(*zohoID)
		if err != nil {
			return nil, fmt.Errorf("check lead %s: %w", *zohoID, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		country := row.Get(colCountry)
		location := &models.Location{
			Region:  InferRegion(country),
			Country: country,
			State:   row.Get(colState),
			City:    row.Get(colCity),
		}
		if err := repos.Locations.FindOrCreate(location); err != nil {
			return nil, fmt.Errorf("resolve location: %w", err)
		}

		company, err := resolveCompany(repos, row.Get(colAccountName), location)
		if err != nil {
			return nil, fmt.Errorf("resolve company: %w", err)
		}

		lead := &models.Lead{
			ZohoID:     *zohoID,
			LeadStatus: row.Get(colLeadQuality),
			LeadType:   row.Get(colLeadType),
		}
		if company != nil {
			lead.CompanyID = &company.ID
		}
		if err := s.validate.Struct(lead); err != nil {
			return nil, fmt.Errorf("validate lead %s: %w", *zohoID, err)
		}
		if err := repos.Leads.Create(lead); err != nil {
			return nil, fmt.Errorf("create lead %s: %w", *zohoID, err)
		}

		contact := &models.Contact{
			LeadID:   lead.ID,
			FullName: joinName(row.Get(colFirstName), row.Get(colLastName)),
			Title:    row.Get(colTitle),
			Email:    row.Get(colEmail),
		}
		if err := repos.Contacts.Create(contact); err != nil {
			return nil, fmt.Errorf("create contact for lead %s: %w", *zohoID, err)
		}

		result.Created++
	}

	return result, nil
}

// resolveCompany finds or creates a company by trimmed name. A nil or
// blank name yields no company. On a re-find the previously assigned
// location is kept.
func resolveCompany(repos ImportRepos, name *string, location *models.Location) (*models.Company, error) {
	if name == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil, nil
	}

	company := &models.Company{Name: trimmed}
	if location != nil {
		company.LocationID = &location.ID
	}
	if err := repos.Companies.FindOrCreate(company); err != nil {
		return nil, err
	}
	return company, nil
}

// joinName joins present name parts with a space; nil when both are absent
func joinName(first, last *string) *string {
	var parts []string
	if first != nil {
		parts = append(parts, *first)
	}
	if last != nil {
		parts = append(parts, *last)
	}
	full := strings.TrimSpace(strings.Join(parts, " "))
	if full == "" {
		return nil
	}
	return &full
}

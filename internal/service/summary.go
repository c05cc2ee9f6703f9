package service

import (
	"fmt"
	"io"

	"lead-portal-backend/internal/repository"
)

const (
	topCompaniesShown = 10
	topTitlesShown    = 5
)

// Summary is a read-only aggregation over the persisted entities, built
// for operator visibility
type Summary struct {
	TotalCompanies    int64                         `json:"total_companies"`
	TopCompanies      []repository.CompanyLeadCount `json:"top_companies"`
	TotalLeads        int64                         `json:"total_leads"`
	LeadsByStatus     []repository.LabelCount       `json:"leads_by_status"`
	LeadsByType       []repository.LabelCount       `json:"leads_by_type"`
	TotalContacts     int64                         `json:"total_contacts"`
	ContactsWithEmail int64                         `json:"contacts_with_email"`
	TopContactTitles  []repository.LabelCount       `json:"top_contact_titles"`
	LocationsByRegion []repository.LabelCount       `json:"locations_by_region"`
}

// SummaryService builds database summaries
type SummaryService struct {
	repo repository.SummaryRepositoryInterface
}

// NewSummaryService creates a new summary service
func NewSummaryService(repo repository.SummaryRepositoryInterface) *SummaryService {
	return &SummaryService{repo: repo}
}

// Build aggregates counts across companies, leads, contacts and locations.
// It has no side effects.
func (s *SummaryService) Build() (*Summary, error) {
	summary := &Summary{}

	companies, err := s.repo.LeadsPerCompany()
	if err != nil {
		return nil, fmt.Errorf("leads per company: %w", err)
	}
	summary.TotalCompanies = int64(len(companies))
	if len(companies) > topCompaniesShown {
		companies = companies[:topCompaniesShown]
	}
	summary.TopCompanies = companies

	if summary.TotalLeads, err = s.repo.TotalLeads(); err != nil {
		return nil, fmt.Errorf("total leads: %w", err)
	}
	if summary.LeadsByStatus, err = s.repo.LeadCountsByStatus(); err != nil {
		return nil, fmt.Errorf("leads by status: %w", err)
	}
	if summary.LeadsByType, err = s.repo.LeadCountsByType(); err != nil {
		return nil, fmt.Errorf("leads by type: %w", err)
	}
	if summary.TotalContacts, err = s.repo.TotalContacts(); err != nil {
		return nil, fmt.Errorf("total contacts: %w", err)
	}
	if summary.ContactsWithEmail, err = s.repo.ContactsWithEmail(); err != nil {
		return nil, fmt.Errorf("contacts with email: %w", err)
	}
	if summary.TopContactTitles, err = s.repo.TopContactTitles(topTitlesShown); err != nil {
		return nil, fmt.Errorf("top contact titles: %w", err)
	}
	if summary.LocationsByRegion, err = s.repo.LocationCountsByRegion(); err != nil {
		return nil, fmt.Errorf("locations by region: %w", err)
	}

	return summary, nil
}

// Render writes the summary as human-readable console lines. The format
// is informational only, not a machine-readable contract.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "\nDATABASE SUMMARY\n%s\n", "----------------------------------------")

	fmt.Fprintf(w, "\nCompanies (%d total):\n", s.TotalCompanies)
	for _, c := range s.TopCompanies {
		fmt.Fprintf(w, "  - %s: %d lead(s)\n", c.Name, c.LeadCount)
	}
	if rest := s.TotalCompanies - int64(len(s.TopCompanies)); rest > 0 {
		fmt.Fprintf(w, "  ...and %d more.\n", rest)
	}

	fmt.Fprintf(w, "\nLeads: %d total\n", s.TotalLeads)
	fmt.Fprintln(w, "  Breakdown by status:")
	for _, c := range s.LeadsByStatus {
		fmt.Fprintf(w, "    - %s: %d\n", labelOrUnknown(c.Label), c.Count)
	}
	fmt.Fprintln(w, "  Breakdown by type:")
	for _, c := range s.LeadsByType {
		fmt.Fprintf(w, "    - %s: %d\n", labelOrUnknown(c.Label), c.Count)
	}

	fmt.Fprintf(w, "\nContacts: %d total\n", s.TotalContacts)
	fmt.Fprintf(w, "  - With email: %d\n", s.ContactsWithEmail)
	fmt.Fprintln(w, "  - Top titles:")
	for _, c := range s.TopContactTitles {
		fmt.Fprintf(w, "    - %s: %d\n", labelOrUnknown(c.Label), c.Count)
	}

	fmt.Fprintln(w, "\nLocations by region:")
	for _, c := range s.LocationsByRegion {
		fmt.Fprintf(w, "  - %s: %d\n", labelOrUnknown(c.Label), c.Count)
	}

	fmt.Fprintln(w, "\nSummary complete.")
}

func labelOrUnknown(label *string) string {
	if label == nil || *label == "" {
		return "Unknown"
	}
	return *label
}

package service

import (
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ImportServiceInterface defines the interface for CSV lead imports
type ImportServiceInterface interface {
	ImportCSV(r io.Reader) (*ImportResult, error)
}

// SummaryServiceInterface defines the interface for database summaries
type SummaryServiceInterface interface {
	Build() (*Summary, error)
}

// ZohoSyncServiceInterface defines the interface for CRM bulk read syncs
type ZohoSyncServiceInterface interface {
	SyncLeads() (*ImportResult, error)
}

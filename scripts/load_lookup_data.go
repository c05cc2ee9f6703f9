package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"lead-portal-backend/internal/config"
	"lead-portal-backend/internal/database"
	"lead-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the lookup tables
type SizeData struct {
	FTERange string `yaml:"fte_range"`
}

type FundingStageData struct {
	Stage   string `yaml:"stage"`
	Funders string `yaml:"funders,omitempty"`
}

type ModalityMaturityData struct {
	Stage string `yaml:"stage"`
}

type TherapeuticModalityData struct {
	Type    string `yaml:"type"`
	Subtype string `yaml:"subtype,omitempty"`
}

type lookupData struct {
	Sizes         []SizeData                `yaml:"sizes"`
	FundingStages []FundingStageData        `yaml:"funding_stages"`
	Maturities    []ModalityMaturityData    `yaml:"modality_maturities"`
	Modalities    []TherapeuticModalityData `yaml:"therapeutic_modalities"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadLookupData(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load lookup data: %v", err)
	}

	log.Println("Lookup data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadLookupData(db *gorm.DB, dataDir string) error {
	data, err := loadYAML(filepath.Join(dataDir, "lookups.yaml"))
	if err != nil {
		return err
	}

	created := 0
	for _, s := range data.Sizes {
		fteRange := s.FTERange
		size := models.Size{FTERange: &fteRange}
		result := db.Where("fte_range = ?", fteRange).FirstOrCreate(&size)
		if result.Error != nil {
			return fmt.Errorf("failed to create size %q: %w", fteRange, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("Sizes: %d created, %d total", created, len(data.Sizes))

	created = 0
	for _, f := range data.FundingStages {
		stage := f.Stage
		fundingStage := models.FundingStage{Stage: &stage}
		if f.Funders != "" {
			funders := f.Funders
			fundingStage.Funders = &funders
		}
		result := db.Where("stage = ?", stage).FirstOrCreate(&fundingStage)
		if result.Error != nil {
			return fmt.Errorf("failed to create funding stage %q: %w", stage, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("Funding stages: %d created, %d total", created, len(data.FundingStages))

	created = 0
	for _, m := range data.Maturities {
		stage := m.Stage
		maturity := models.ModalityMaturity{Stage: &stage}
		result := db.Where("stage = ?", stage).FirstOrCreate(&maturity)
		if result.Error != nil {
			return fmt.Errorf("failed to create maturity %q: %w", stage, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("Modality maturities: %d created, %d total", created, len(data.Maturities))

	created = 0
	for _, m := range data.Modalities {
		modalityType := m.Type
		modality := models.TherapeuticModality{Type: &modalityType}
		if m.Subtype != "" {
			subtype := m.Subtype
			modality.Subtype = &subtype
		}
		result := db.Where("type = ? AND subtype IS NOT DISTINCT FROM ?", modalityType, modality.Subtype).FirstOrCreate(&modality)
		if result.Error != nil {
			return fmt.Errorf("failed to create modality %q: %w", modalityType, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("Therapeutic modalities: %d created, %d total", created, len(data.Modalities))

	return nil
}

func loadYAML(path string) (*lookupData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var data lookupData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"lead-portal-backend/internal/config"
	"lead-portal-backend/internal/database"
	"lead-portal-backend/internal/repository"
	"lead-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// Batch importer: loads lead CSV exports into the database and prints a
// summary. Sources, in order of precedence: explicit file arguments, a
// fresh Zoho bulk read (-zoho), or every CSV in the configured download
// directory.
func main() {
	zohoSync := flag.Bool("zoho", false, "fetch leads from Zoho CRM before importing")
	skipSummary := flag.Bool("no-summary", false, "skip the database summary after importing")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Silent})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	importService := service.NewImportService(db, validator.New())

	total := &service.ImportResult{}
	switch {
	case *zohoSync:
		zohoService := service.NewZohoService(cfg, importService)
		result, err := zohoService.SyncLeads()
		if err != nil {
			log.Fatalf("Zoho sync failed: %v", err)
		}
		total = result
	default:
		paths := flag.Args()
		if len(paths) == 0 {
			paths, err = filepath.Glob(filepath.Join(cfg.ZohoDownloadDir, "*.csv"))
			if err != nil {
				log.Fatalf("Failed to list %s: %v", cfg.ZohoDownloadDir, err)
			}
		}
		if len(paths) == 0 {
			log.Fatalf("No CSV files to import; pass file paths or run with -zoho")
		}

		for _, path := range paths {
			result, err := importFile(importService, path)
			if err != nil {
				log.Fatalf("Import of %s failed: %v", path, err)
			}
			logrus.WithFields(logrus.Fields{
				"file":    path,
				"created": result.Created,
				"skipped": result.Skipped,
			}).Info("file imported")
			total.Created += result.Created
			total.Skipped += result.Skipped
		}
	}

	fmt.Printf("\nImport finished: %d created, %d skipped\n", total.Created, total.Skipped)

	if *skipSummary {
		return
	}

	summaryService := service.NewSummaryService(repository.NewSummaryRepository(db))
	summary, err := summaryService.Build()
	if err != nil {
		log.Fatalf("Failed to build summary: %v", err)
	}
	summary.Render(os.Stdout)
}

func importFile(importService *service.ImportService, path string) (*service.ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return importService.ImportCSV(file)
}

package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lead-portal-backend/internal/config"
	apperrors "lead-portal-backend/internal/errors"
	"lead-portal-backend/internal/logger"

	"golang.org/x/oauth2"
)

// Bulk read job states reported by the CRM
const (
	jobStateCompleted = "COMPLETED"
	jobStateFailed    = "FAILED"
	jobStateCancelled = "CANCELLED"
)

// ZohoService drives the CRM bulk-read export: it exchanges the refresh
// token for access tokens, creates an asynchronous bulk read job, polls
// until the job completes, downloads the zipped CSV result and feeds it
// to the importer.
type ZohoService struct {
	cfg        *config.Config
	httpClient *http.Client
	tokens     oauth2.TokenSource
	importer   ImportServiceInterface
	log        *logger.Logger
}

// NewZohoService creates a new Zoho bulk read service
func NewZohoService(cfg *config.Config, importer ImportServiceInterface) *ZohoService {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ZohoClientID,
		ClientSecret: cfg.ZohoClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.ZohoAccountsURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	return &ZohoService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		tokens: oauthCfg.TokenSource(context.Background(), &oauth2.Token{
			RefreshToken: cfg.ZohoRefreshToken,
		}),
		importer: importer,
		log:      logger.New(),
	}
}

// BulkJobStatus is the polled state of a bulk read job
type BulkJobStatus struct {
	State       string
	DownloadURL string
}

type bulkReadRequest struct {
	Query bulkReadQuery `json:"query"`
}

type bulkReadQuery struct {
	Module bulkReadModule `json:"module"`
	Page   int            `json:"page"`
}

type bulkReadModule struct {
	APIName string `json:"api_name"`
}

type bulkReadResponse struct {
	Data []struct {
		State   string `json:"state"`
		Details struct {
			ID string `json:"id"`
		} `json:"details"`
		Result struct {
			DownloadURL string `json:"download_url"`
		} `json:"result"`
	} `json:"data"`
}

// SyncLeads runs one full bulk read cycle for the Leads module and imports
// every CSV the job produced. Returns combined created/skipped counts.
func (s *ZohoService) SyncLeads() (*ImportResult, error) {
	if !s.cfg.HasZohoCredentials() {
		return nil, apperrors.ErrZohoNotConfigured
	}

	jobID, err := s.CreateBulkReadJob("Leads")
	if err != nil {
		return nil, fmt.Errorf("create bulk read job: %w", err)
	}
	s.log.WithField("job_id", jobID).Info("bulk read job created")

	status, err := s.waitForJob(jobID)
	if err != nil {
		return nil, err
	}

	csvPaths, err := s.downloadResult(status.DownloadURL)
	if err != nil {
		return nil, fmt.Errorf("download bulk read result: %w", err)
	}
	if len(csvPaths) == 0 {
		return nil, apperrors.ErrNoBulkResult
	}

	total := &ImportResult{}
	for _, path := range csvPaths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		result, err := s.importer.ImportCSV(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", path, err)
		}
		total.Created += result.Created
		total.Skipped += result.Skipped
	}

	s.log.WithFields(map[string]interface{}{
		"created": total.Created,
		"skipped": total.Skipped,
		"files":   len(csvPaths),
	}).Info("zoho sync complete")

	return total, nil
}

// CreateBulkReadJob creates an asynchronous bulk read job for a module
// and returns the job id
func (s *ZohoService) CreateBulkReadJob(module string) (string, error) {
	payload := bulkReadRequest{
		Query: bulkReadQuery{
			Module: bulkReadModule{APIName: module},
			Page:   1,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal bulk read request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.ZohoAPIDomain+"/crm/bulk/v8/read", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp bulkReadResponse
	if err := s.do(req, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].Details.ID == "" {
		return "", fmt.Errorf("bulk read response contains no job id")
	}
	return resp.Data[0].Details.ID, nil
}

// JobStatus fetches the current state of a bulk read job
func (s *ZohoService) JobStatus(jobID string) (*BulkJobStatus, error) {
	req, err := http.NewRequest(http.MethodGet, s.cfg.ZohoAPIDomain+"/crm/bulk/v8/read/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var resp bulkReadResponse
	if err := s.do(req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("bulk read status response is empty")
	}
	return &BulkJobStatus{
		State:       resp.Data[0].State,
		DownloadURL: resp.Data[0].Result.DownloadURL,
	}, nil
}

// waitForJob polls the job until it completes, fails or the configured
// number of attempts is exhausted
func (s *ZohoService) waitForJob(jobID string) (*BulkJobStatus, error) {
	for attempt := 1; attempt <= s.cfg.ZohoPollAttempts; attempt++ {
		status, err := s.JobStatus(jobID)
		if err != nil {
			return nil, fmt.Errorf("poll job %s: %w", jobID, err)
		}
		s.log.WithFields(map[string]interface{}{
			"job_id":  jobID,
			"attempt": attempt,
			"state":   status.State,
		}).Debug("bulk read job state")

		switch status.State {
		case jobStateCompleted:
			return status, nil
		case jobStateFailed, jobStateCancelled:
			return nil, apperrors.ErrBulkJobFailed
		}

		time.Sleep(s.cfg.ZohoPollInterval)
	}
	return nil, apperrors.ErrBulkJobTimeout
}

// downloadResult fetches the zipped job result and extracts the contained
// CSV files into the configured download directory
func (s *ZohoService) downloadResult(downloadURL string) ([]string, error) {
	req, err := http.NewRequest(http.MethodGet, s.cfg.ZohoAPIDomain+downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if err := s.authorize(req); err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("download failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := os.MkdirAll(s.cfg.ZohoDownloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	zipPath := filepath.Join(s.cfg.ZohoDownloadDir, "bulk_read_result.zip")
	archive, err := os.Create(zipPath)
	if err != nil {
		return nil, fmt.Errorf("create archive file: %w", err)
	}
	if _, err := io.Copy(archive, resp.Body); err != nil {
		archive.Close()
		return nil, fmt.Errorf("write archive: %w", err)
	}
	archive.Close()

	return extractCSVFiles(zipPath, s.cfg.ZohoDownloadDir)
}

// extractCSVFiles unpacks the CSV entries of a zip archive into destDir
// and returns their paths. Entry names are flattened to guard against
// path traversal.
func extractCSVFiles(zipPath, destDir string) ([]string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	var paths []string
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || !strings.EqualFold(filepath.Ext(entry.Name), ".csv") {
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open archive entry %s: %w", entry.Name, err)
		}

		dest := filepath.Join(destDir, filepath.Base(entry.Name))
		out, err := os.Create(dest)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("create %s: %w", dest, err)
		}
		_, err = io.Copy(out, src)
		src.Close()
		out.Close()
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", entry.Name, err)
		}

		paths = append(paths, dest)
	}

	return paths, nil
}

// do sends an authorized API request and decodes the JSON response
func (s *ZohoService) do(req *http.Request, out interface{}) error {
	if err := s.authorize(req); err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zoho request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("zoho request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode zoho response: %w", err)
	}
	return nil
}

// authorize attaches a fresh access token. The token source exchanges the
// long-lived refresh token and caches the result until expiry.
func (s *ZohoService) authorize(req *http.Request) error {
	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("get access token: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token.AccessToken)
	return nil
}

package service_test

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lead-portal-backend/internal/config"
	apperrors "lead-portal-backend/internal/errors"
	"lead-portal-backend/internal/mocks"
	"lead-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLeadsCSV = "Record Id,Account Name\n100,Acme Bio\n"

func newTokenServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "test-refresh", r.FormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-access","token_type":"Bearer","expires_in":3600}`)
	}))
}

func zipWithCSV(t *testing.T, name, content string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create(name)
	require.NoError(t, err)
	_, err = entry.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zohoTestConfig(tokenURL, apiURL, downloadDir string) *config.Config {
	return &config.Config{
		ZohoClientID:     "test-client",
		ZohoClientSecret: "test-secret",
		ZohoRefreshToken: "test-refresh",
		ZohoAPIDomain:    apiURL,
		ZohoAccountsURL:  tokenURL,
		ZohoPollAttempts: 3,
		ZohoPollInterval: time.Millisecond,
		ZohoDownloadDir:  downloadDir,
	}
}

func TestSyncLeads_FullFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenServer := newTokenServer(t)
	defer tokenServer.Close()

	polls := 0
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Zoho-oauthtoken test-access", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/crm/bulk/v8/read":
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"api_name":"Leads"`)
			fmt.Fprint(w, `{"data":[{"status":"ADDED","details":{"id":"job-1"}}]}`)
		case r.Method == http.MethodGet && r.URL.Path == "/crm/bulk/v8/read/job-1":
			polls++
			if polls < 2 {
				fmt.Fprint(w, `{"data":[{"state":"IN PROGRESS"}]}`)
				return
			}
			fmt.Fprint(w, `{"data":[{"state":"COMPLETED","result":{"download_url":"/crm/bulk/v8/read/job-1/result"}}]}`)
		case r.Method == http.MethodGet && r.URL.Path == "/crm/bulk/v8/read/job-1/result":
			w.Header().Set("Content-Type", "application/zip")
			w.Write(zipWithCSV(t, "job-1.csv", testLeadsCSV))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer apiServer.Close()

	mockImporter := mocks.NewMockImportServiceInterface(ctrl)
	mockImporter.EXPECT().ImportCSV(gomock.Any()).DoAndReturn(func(r io.Reader) (*service.ImportResult, error) {
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, testLeadsCSV, string(content))
		return &service.ImportResult{Created: 1}, nil
	})

	cfg := zohoTestConfig(tokenServer.URL, apiServer.URL, t.TempDir())
	zohoService := service.NewZohoService(cfg, mockImporter)

	result, err := zohoService.SyncLeads()

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 2, polls)
}

func TestSyncLeads_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	zohoService := service.NewZohoService(cfg, mocks.NewMockImportServiceInterface(ctrl))

	_, err := zohoService.SyncLeads()
	assert.ErrorIs(t, err, apperrors.ErrZohoNotConfigured)
}

func TestSyncLeads_JobFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenServer := newTokenServer(t)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			fmt.Fprint(w, `{"data":[{"details":{"id":"job-1"}}]}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"state":"FAILED"}]}`)
	}))
	defer apiServer.Close()

	cfg := zohoTestConfig(tokenServer.URL, apiServer.URL, t.TempDir())
	zohoService := service.NewZohoService(cfg, mocks.NewMockImportServiceInterface(ctrl))

	_, err := zohoService.SyncLeads()
	assert.ErrorIs(t, err, apperrors.ErrBulkJobFailed)
}

func TestSyncLeads_JobTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenServer := newTokenServer(t)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			fmt.Fprint(w, `{"data":[{"details":{"id":"job-1"}}]}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"state":"IN PROGRESS"}]}`)
	}))
	defer apiServer.Close()

	cfg := zohoTestConfig(tokenServer.URL, apiServer.URL, t.TempDir())
	zohoService := service.NewZohoService(cfg, mocks.NewMockImportServiceInterface(ctrl))

	_, err := zohoService.SyncLeads()
	assert.ErrorIs(t, err, apperrors.ErrBulkJobTimeout)
}

func TestSyncLeads_EmptyArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenServer := newTokenServer(t)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			fmt.Fprint(w, `{"data":[{"details":{"id":"job-1"}}]}`)
		case r.URL.Path == "/crm/bulk/v8/read/job-1":
			fmt.Fprint(w, `{"data":[{"state":"COMPLETED","result":{"download_url":"/crm/bulk/v8/read/job-1/result"}}]}`)
		default:
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			require.NoError(t, zw.Close())
			w.Write(buf.Bytes())
		}
	}))
	defer apiServer.Close()

	cfg := zohoTestConfig(tokenServer.URL, apiServer.URL, t.TempDir())
	zohoService := service.NewZohoService(cfg, mocks.NewMockImportServiceInterface(ctrl))

	_, err := zohoService.SyncLeads()
	assert.ErrorIs(t, err, apperrors.ErrNoBulkResult)
}

func TestCreateBulkReadJob_MissingJobID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenServer := newTokenServer(t)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer apiServer.Close()

	cfg := zohoTestConfig(tokenServer.URL, apiServer.URL, t.TempDir())
	zohoService := service.NewZohoService(cfg, mocks.NewMockImportServiceInterface(ctrl))

	_, err := zohoService.CreateBulkReadJob("Leads")
	assert.Error(t, err)
}

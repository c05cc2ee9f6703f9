package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-portal-backend/internal/api/handlers"
	apperrors "lead-portal-backend/internal/errors"
	"lead-portal-backend/internal/mocks"
	"lead-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SyncHandlerTestSuite defines the test suite for SyncHandler
type SyncHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockZohoSvc *mocks.MockZohoSyncServiceInterface
	handler     *handlers.SyncHandler
	router      *gin.Engine
}

func (suite *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockZohoSvc = mocks.NewMockZohoSyncServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSyncHandler(suite.mockZohoSvc)

	suite.router = gin.New()
	suite.router.POST("/sync/zoho", suite.handler.SyncZohoLeads)
}

func (suite *SyncHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SyncHandlerTestSuite) postSync() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sync/zoho", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SyncHandlerTestSuite) TestSyncZohoLeads_Success() {
	suite.mockZohoSvc.EXPECT().SyncLeads().Return(&service.ImportResult{Created: 5, Skipped: 2}, nil)

	w := suite.postSync()

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ImportResult
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 5, got.Created)
	assert.Equal(suite.T(), 2, got.Skipped)
}

func (suite *SyncHandlerTestSuite) TestSyncZohoLeads_NotConfigured() {
	suite.mockZohoSvc.EXPECT().SyncLeads().Return(nil, apperrors.ErrZohoNotConfigured)

	w := suite.postSync()

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

func (suite *SyncHandlerTestSuite) TestSyncZohoLeads_JobFailed() {
	suite.mockZohoSvc.EXPECT().SyncLeads().Return(nil, apperrors.ErrBulkJobFailed)

	w := suite.postSync()

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *SyncHandlerTestSuite) TestSyncZohoLeads_Timeout() {
	suite.mockZohoSvc.EXPECT().SyncLeads().Return(nil, apperrors.ErrBulkJobTimeout)

	w := suite.postSync()

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *SyncHandlerTestSuite) TestSyncZohoLeads_UnexpectedError() {
	suite.mockZohoSvc.EXPECT().SyncLeads().Return(nil, errors.New("boom"))

	w := suite.postSync()

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to sync leads")
}

func TestSyncHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

package service_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"lead-portal-backend/internal/mocks"
	"lead-portal-backend/internal/repository"
	"lead-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockSummaryRepositoryInterface
	summaryService *service.SummaryService
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSummaryRepositoryInterface(suite.ctrl)
	suite.summaryService = service.NewSummaryService(suite.mockRepo)
}

func (suite *SummaryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SummaryServiceTestSuite) TestBuild_Success() {
	hot := "Hot"
	inbound := "Inbound"
	ceo := "CEO"
	europe := "Europe"

	suite.mockRepo.EXPECT().LeadsPerCompany().Return([]repository.CompanyLeadCount{
		{Name: "Acme Bio", LeadCount: 3},
		{Name: "Globex", LeadCount: 1},
	}, nil)
	suite.mockRepo.EXPECT().TotalLeads().Return(int64(4), nil)
	suite.mockRepo.EXPECT().LeadCountsByStatus().Return([]repository.LabelCount{{Label: &hot, Count: 4}}, nil)
	suite.mockRepo.EXPECT().LeadCountsByType().Return([]repository.LabelCount{{Label: &inbound, Count: 4}}, nil)
	suite.mockRepo.EXPECT().TotalContacts().Return(int64(4), nil)
	suite.mockRepo.EXPECT().ContactsWithEmail().Return(int64(3), nil)
	suite.mockRepo.EXPECT().TopContactTitles(5).Return([]repository.LabelCount{{Label: &ceo, Count: 2}}, nil)
	suite.mockRepo.EXPECT().LocationCountsByRegion().Return([]repository.LabelCount{{Label: &europe, Count: 2}}, nil)

	summary, err := suite.summaryService.Build()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), summary.TotalCompanies)
	assert.Len(suite.T(), summary.TopCompanies, 2)
	assert.Equal(suite.T(), int64(4), summary.TotalLeads)
	assert.Equal(suite.T(), int64(3), summary.ContactsWithEmail)
	assert.Equal(suite.T(), "Europe", *summary.LocationsByRegion[0].Label)
}

func (suite *SummaryServiceTestSuite) TestBuild_TruncatesTopCompanies() {
	companies := make([]repository.CompanyLeadCount, 12)
	for i := range companies {
		companies[i] = repository.CompanyLeadCount{Name: fmt.Sprintf("Company %d", i), LeadCount: int64(12 - i)}
	}

	suite.mockRepo.EXPECT().LeadsPerCompany().Return(companies, nil)
	suite.mockRepo.EXPECT().TotalLeads().Return(int64(0), nil)
	suite.mockRepo.EXPECT().LeadCountsByStatus().Return(nil, nil)
	suite.mockRepo.EXPECT().LeadCountsByType().Return(nil, nil)
	suite.mockRepo.EXPECT().TotalContacts().Return(int64(0), nil)
	suite.mockRepo.EXPECT().ContactsWithEmail().Return(int64(0), nil)
	suite.mockRepo.EXPECT().TopContactTitles(5).Return(nil, nil)
	suite.mockRepo.EXPECT().LocationCountsByRegion().Return(nil, nil)

	summary, err := suite.summaryService.Build()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), summary.TotalCompanies)
	assert.Len(suite.T(), summary.TopCompanies, 10)
	assert.Equal(suite.T(), "Company 0", summary.TopCompanies[0].Name)
}

func (suite *SummaryServiceTestSuite) TestBuild_RepositoryError() {
	suite.mockRepo.EXPECT().LeadsPerCompany().Return(nil, errors.New("db failed"))

	summary, err := suite.summaryService.Build()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), summary)
	assert.Contains(suite.T(), err.Error(), "leads per company")
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func TestSummaryRender(t *testing.T) {
	hot := "Hot"
	summary := &service.Summary{
		TotalCompanies:    11,
		TopCompanies:      []repository.CompanyLeadCount{{Name: "Acme Bio", LeadCount: 3}},
		TotalLeads:        3,
		LeadsByStatus:     []repository.LabelCount{{Label: &hot, Count: 2}, {Label: nil, Count: 1}},
		TotalContacts:     3,
		ContactsWithEmail: 2,
	}

	var buf bytes.Buffer
	summary.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "DATABASE SUMMARY")
	assert.Contains(t, out, "Companies (11 total):")
	assert.Contains(t, out, "  - Acme Bio: 3 lead(s)")
	assert.Contains(t, out, "  ...and 10 more.")
	assert.Contains(t, out, "Leads: 3 total")
	assert.Contains(t, out, "    - Hot: 2")
	// absent labels render as Unknown
	assert.Contains(t, out, "    - Unknown: 1")
	assert.Contains(t, out, "  - With email: 2")
	assert.Contains(t, out, "Summary complete.")
}

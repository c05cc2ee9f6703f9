package service_test

import (
	"errors"
	"strings"
	"testing"

	"lead-portal-backend/internal/database/models"
	"lead-portal-backend/internal/mocks"
	"lead-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLocations *mocks.MockLocationRepositoryInterface
	mockCompanies *mocks.MockCompanyRepositoryInterface
	mockLeads     *mocks.MockLeadRepositoryInterface
	mockContacts  *mocks.MockContactRepositoryInterface
	repos         service.ImportRepos
	importService *service.ImportService
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLocations = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockLeads = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.repos = service.ImportRepos{
		Locations: suite.mockLocations,
		Companies: suite.mockCompanies,
		Leads:     suite.mockLeads,
		Contacts:  suite.mockContacts,
	}
	suite.importService = service.NewImportService(nil, validator.New())
}

func (suite *ImportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ImportServiceTestSuite) parseCSV(lines ...string) *service.Table {
	table, err := service.ParseCSV(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(suite.T(), err)
	return table
}

func (suite *ImportServiceTestSuite) TestImportTable_CreatesLeadWithRelations() {
	table := suite.parseCSV(
		"Record Id,Account Name,First Name,Last Name,Email,Title,Mailing Country,Mailing State,Mailing City,Lead Quality,Lead Type",
		"100,Acme Bio,Jane,Doe,jane@acme.test,CEO,United States,California,San Diego,Hot,Inbound",
	)

	locationID := uuid.New()
	companyID := uuid.New()

	suite.mockLeads.EXPECT().ExistsByZohoID("100").Return(false, nil)
	suite.mockLocations.EXPECT().FindOrCreate(gomock.Any()).DoAndReturn(func(loc *models.Location) error {
		require.NotNil(suite.T(), loc.Region)
		assert.Equal(suite.T(), "North America", *loc.Region)
		assert.Equal(suite.T(), "United States", *loc.Country)
		assert.Equal(suite.T(), "California", *loc.State)
		assert.Equal(suite.T(), "San Diego", *loc.City)
		loc.ID = locationID
		return nil
	})
	suite.mockCompanies.EXPECT().FindOrCreate(gomock.Any()).DoAndReturn(func(company *models.Company) error {
		assert.Equal(suite.T(), "Acme Bio", company.Name)
		require.NotNil(suite.T(), company.LocationID)
		assert.Equal(suite.T(), locationID, *company.LocationID)
		company.ID = companyID
		return nil
	})
	suite.mockLeads.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		assert.Equal(suite.T(), "100", lead.ZohoID)
		require.NotNil(suite.T(), lead.CompanyID)
		assert.Equal(suite.T(), companyID, *lead.CompanyID)
		assert.Equal(suite.T(), "Hot", *lead.LeadStatus)
		assert.Equal(suite.T(), "Inbound", *lead.LeadType)
		lead.ID = uuid.New()
		return nil
	})
	suite.mockContacts.EXPECT().Create(gomock.Any()).DoAndReturn(func(contact *models.Contact) error {
		assert.Equal(suite.T(), "Jane Doe", *contact.FullName)
		assert.Equal(suite.T(), "CEO", *contact.Title)
		assert.Equal(suite.T(), "jane@acme.test", *contact.Email)
		return nil
	})

	result, err := suite.importService.ImportTable(suite.repos, table)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Created)
	assert.Equal(suite.T(), 0, result.Skipped)
}

func (suite *ImportServiceTestSuite) TestImportTable_SkipsRowWithoutRecordID() {
	table := suite.parseCSV(
		"Record Id,Account Name",
		"nan,Acme Bio",
	)

	result, err := suite.importService.ImportTable(suite.repos, table)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.Created)
	assert.Equal(suite.T(), 1, result.Skipped)
}

func (suite *ImportServiceTestSuite) TestImportTable_SkipsAlreadyImportedLead() {
	table := suite.parseCSV(
		"Record Id,Account Name",
		"100,Acme Bio",
	)

	suite.mockLeads.EXPECT().ExistsByZohoID("100").Return(true, nil)

	result, err := suite.importService.ImportTable(suite.repos, table)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.Created)
	assert.Equal(suite.T(), 1, result.Skipped)
}

func (suite *ImportServiceTestSuite) TestImportTable_NoCompanyForAbsentAccountName() {
	table := suite.parseCSV(
		"Record Id,Account Name,Lead Quality",
		"100,nan,Cold",
	)

	suite.mockLeads.EXPECT().ExistsByZohoID("100").Return(false, nil)
	suite.mockLocations.EXPECT().FindOrCreate(gomock.Any()).DoAndReturn(func(loc *models.Location) error {
		// no mailing columns: location resolves to the all-absent tuple
		assert.Nil(suite.T(), loc.Country)
		assert.Nil(suite.T(), loc.Region)
		loc.ID = uuid.New()
		return nil
	})
	suite.mockLeads.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		assert.Nil(suite.T(), lead.CompanyID)
		lead.ID = uuid.New()
		return nil
	})
	suite.mockContacts.EXPECT().Create(gomock.Any()).DoAndReturn(func(contact *models.Contact) error {
		// contact rows are always created, even without name parts
		assert.Nil(suite.T(), contact.FullName)
		return nil
	})

	result, err := suite.importService.ImportTable(suite.repos, table)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Created)
}

func (suite *ImportServiceTestSuite) TestImportTable_MixedRows() {
	table := suite.parseCSV(
		"Record Id,Account Name,First Name,Last Name",
		"100,Acme Bio,Jane,Doe",
		"nan,Orphan Co,No,Body",
		"101,Acme Bio,John,Smith",
	)

	suite.mockLeads.EXPECT().ExistsByZohoID("100").Return(false, nil)
	suite.mockLeads.EXPECT().ExistsByZohoID("101").Return(true, nil)
	suite.mockLocations.EXPECT().FindOrCreate(gomock.Any()).DoAndReturn(func(loc *models.Location) error {
		loc.ID = uuid.New()
		return nil
	})
	suite.mockCompanies.EXPECT().FindOrCreate(gomock.Any()).DoAndReturn(func(company *models.Company) error {
		company.ID = uuid.New()
		return nil
	})
	suite.mockLeads.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		lead.ID = uuid.New()
		return nil
	})
	suite.mockContacts.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.importService.ImportTable(suite.repos, table)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Created)
	assert.Equal(suite.T(), 2, result.Skipped)
}

func (suite *ImportServiceTestSuite) TestImportTable_StoreErrorAborts() {
	table := suite.parseCSV(
		"Record Id,Account Name",
		"100,Acme Bio",
	)

	suite.mockLeads.EXPECT().ExistsByZohoID("100").Return(false, nil)
	suite.mockLocations.EXPECT().FindOrCreate(gomock.Any()).Return(errors.New("db down"))

	result, err := suite.importService.ImportTable(suite.repos, table)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.Contains(suite.T(), err.Error(), "resolve location")
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

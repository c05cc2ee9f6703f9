//go:build integration
// +build integration

package repository

import (
	"testing"

	"lead-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LocationRepositoryTestSuite tests the LocationRepository
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LocationRepository
	factory       *testutils.LocationFactory
}

func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLocationRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewLocationFactory()
}

func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LocationRepositoryTestSuite) TestCreateAndGetByID() {
	location := suite.factory.Create()
	suite.NoError(suite.repo.Create(location))

	retrieved, err := suite.repo.GetByID(location.ID)

	suite.NoError(err)
	suite.Equal(location.ID, retrieved.ID)
	suite.Equal("United States", *retrieved.Country)
	suite.Equal("San Diego", *retrieved.City)
}

func (suite *LocationRepositoryTestSuite) TestGetByIDNotFound() {
	location, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(location)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreate_DeduplicatesFullTuple() {
	first := suite.factory.Create()
	suite.NoError(suite.repo.FindOrCreate(first))

	second := suite.factory.Create()
	suite.NoError(suite.repo.FindOrCreate(second))

	suite.Equal(first.ID, second.ID)

	var count int64
	suite.baseTestSuite.DB.Table("locations").Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreate_AbsentCellsMatch() {
	// two lookups of the same country-only tuple must resolve to one row
	first := suite.factory.WithCountry("Germany")
	suite.NoError(suite.repo.FindOrCreate(first))

	second := suite.factory.WithCountry("Germany")
	suite.NoError(suite.repo.FindOrCreate(second))

	suite.Equal(first.ID, second.ID)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreate_AllAbsentTuple() {
	first := suite.factory.Empty()
	suite.NoError(suite.repo.FindOrCreate(first))

	second := suite.factory.Empty()
	suite.NoError(suite.repo.FindOrCreate(second))

	suite.Equal(first.ID, second.ID)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreate_DistinctTuplesStaySeparate() {
	us := suite.factory.WithCountry("United States")
	suite.NoError(suite.repo.FindOrCreate(us))

	de := suite.factory.WithCountry("Germany")
	suite.NoError(suite.repo.FindOrCreate(de))

	suite.NotEqual(us.ID, de.ID)
}

func (suite *LocationRepositoryTestSuite) TestGetByTuple() {
	location := suite.factory.Create()
	suite.NoError(suite.repo.Create(location))

	retrieved, err := suite.repo.GetByTuple(location.Region, location.Country, location.State, location.City)

	suite.NoError(err)
	suite.Equal(location.ID, retrieved.ID)
}

func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}

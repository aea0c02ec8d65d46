//go:build integration
// +build integration

package repository

import (
	"testing"

	"shift-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SectionRepositoryTestSuite tests the SectionRepository
type SectionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SectionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SectionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSectionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SectionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SectionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SectionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests that a section round-trips with all fields
func (suite *SectionRepositoryTestSuite) TestCreateAndGetByID() {
	section := suite.factories.Section.Create()
	suite.Require().NoError(suite.repo.Create(section))

	found, err := suite.repo.GetByID(section.ID)
	suite.Require().NoError(err)
	suite.Equal(section.Name, found.Name)
	suite.Equal(section.Description, found.Description)
}

// TestGetByName tests lookup by the unique name
func (suite *SectionRepositoryTestSuite) TestGetByName() {
	section := suite.factories.Section.WithName("Emergency")
	suite.Require().NoError(suite.repo.Create(section))

	found, err := suite.repo.GetByName("Emergency")
	suite.Require().NoError(err)
	suite.Equal(section.ID, found.ID)
}

// TestGetAllOrdersByName tests the listing order
func (suite *SectionRepositoryTestSuite) TestGetAllOrdersByName() {
	for _, name := range []string{"Surgery", "Admissions", "Pediatrics"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.Section.WithName(name)))
	}

	sections, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(sections, 3)
	suite.Equal("Admissions", sections[0].Name)
	suite.Equal("Pediatrics", sections[1].Name)
	suite.Equal("Surgery", sections[2].Name)
}

func TestSectionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SectionRepositoryTestSuite))
}

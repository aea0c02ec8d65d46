//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shift-roster-backend/internal/database/models"
	"shift-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ScheduledShiftRepositoryTestSuite tests the ScheduledShiftRepository
type ScheduledShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScheduledShiftRepository
	factories     *testutils.FactorySet

	user  *models.User
	shift *models.Shift
}

// SetupSuite runs before all tests in the suite
func (suite *ScheduledShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewScheduledShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScheduledShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScheduledShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.user).Error)

	suite.shift = suite.factories.Shift.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.shift).Error)
}

// TearDownTest runs after each test
func (suite *ScheduledShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ScheduledShiftRepositoryTestSuite) newRow(date time.Time) *models.ScheduledShift {
	return &models.ScheduledShift{
		ShiftID:    suite.shift.ID,
		UserID:     suite.user.ID,
		Date:       date,
		AssignedBy: suite.user.ID,
		Status:     models.ScheduledShiftStatusAssigned,
	}
}

// TestInsertIgnore tests that the unique key absorbs duplicate inserts
func (suite *ScheduledShiftRepositoryTestSuite) TestInsertIgnore() {
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	created, err := suite.repo.InsertIgnore(suite.newRow(date))
	suite.Require().NoError(err)
	suite.True(created)

	// Same (shift, user, date) again: no error, no new row.
	created, err = suite.repo.InsertIgnore(suite.newRow(date))
	suite.Require().NoError(err)
	suite.False(created)

	rows, err := suite.repo.GetByUserInRange(suite.user.ID, date, date)
	suite.Require().NoError(err)
	suite.Len(rows, 1)
}

// TestGetByUserAndDatePreloadsShift tests that the shift definition rides along
func (suite *ScheduledShiftRepositoryTestSuite) TestGetByUserAndDatePreloadsShift() {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	_, err := suite.repo.InsertIgnore(suite.newRow(date))
	suite.Require().NoError(err)

	row, err := suite.repo.GetByUserAndDate(suite.user.ID, date)
	suite.Require().NoError(err)
	suite.Equal(suite.shift.Name, row.Shift.Name)
	suite.Equal(suite.shift.StartTime, row.Shift.StartTime)
}

// TestDeleteForUserInRange tests ranged retraction
func (suite *ScheduledShiftRepositoryTestSuite) TestDeleteForUserInRange() {
	base := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 5; offset++ {
		_, err := suite.repo.InsertIgnore(suite.newRow(base.AddDate(0, 0, offset)))
		suite.Require().NoError(err)
	}

	err := suite.repo.DeleteForUserInRange(suite.user.ID, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2))
	suite.Require().NoError(err)

	rows, err := suite.repo.GetByUserInRange(suite.user.ID, base, base.AddDate(0, 0, 4))
	suite.Require().NoError(err)
	suite.Len(rows, 3)
}

// TestGetParticipants tests the distinct non-cancelled participant query
func (suite *ScheduledShiftRepositoryTestSuite) TestGetParticipants() {
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	other := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	_, err := suite.repo.InsertIgnore(suite.newRow(date))
	suite.Require().NoError(err)

	cancelled := suite.newRow(date)
	cancelled.UserID = other.ID
	cancelled.Status = models.ScheduledShiftStatusCancelled
	_, err = suite.repo.InsertIgnore(cancelled)
	suite.Require().NoError(err)

	participants, err := suite.repo.GetParticipants(suite.shift.ID, date)
	suite.Require().NoError(err)
	suite.Len(participants, 1)
	suite.Equal(suite.user.ID, participants[0])
}

func TestScheduledShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduledShiftRepositoryTestSuite))
}

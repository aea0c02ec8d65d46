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

// ShiftExceptionRepositoryTestSuite tests the ShiftExceptionRepository
type ShiftExceptionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftExceptionRepository
	scheduledRepo *ScheduledShiftRepository
	factories     *testutils.FactorySet

	user  *models.User
	shift *models.Shift
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftExceptionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewShiftExceptionRepository(suite.baseTestSuite.DB)
	suite.scheduledRepo = NewScheduledShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftExceptionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftExceptionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.user).Error)

	suite.shift = suite.factories.Shift.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.shift).Error)
}

// TearDownTest runs after each test
func (suite *ShiftExceptionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftExceptionRepositoryTestSuite) materialize(date time.Time) {
	created, err := suite.scheduledRepo.InsertIgnore(&models.ScheduledShift{
		ShiftID:    suite.shift.ID,
		UserID:     suite.user.ID,
		Date:       date,
		AssignedBy: suite.user.ID,
		Status:     models.ScheduledShiftStatusConfirmed,
	})
	suite.Require().NoError(err)
	suite.Require().True(created)
}

// TestDayOffExceptionDeletesScheduledShift tests the day-off reconcile path
func (suite *ShiftExceptionRepositoryTestSuite) TestDayOffExceptionDeletesScheduledShift() {
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	suite.materialize(date)

	err := suite.repo.UpsertWithReconcile(&models.ShiftException{
		UserID:        suite.user.ID,
		ExceptionDate: date,
		IsDayOff:      true,
		Reason:        "Training day",
		CreatedBy:     suite.user.ID,
	})
	suite.Require().NoError(err)

	_, err = suite.scheduledRepo.GetByUserAndDate(suite.user.ID, date)
	suite.Error(err)

	exc, err := suite.repo.GetByUserAndDate(suite.user.ID, date)
	suite.Require().NoError(err)
	suite.True(exc.IsDayOff)
}

// TestShiftOverrideResetsStatus tests that a shift override revives the row
func (suite *ShiftExceptionRepositoryTestSuite) TestShiftOverrideResetsStatus() {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	suite.materialize(date)

	err := suite.repo.UpsertWithReconcile(&models.ShiftException{
		UserID:        suite.user.ID,
		ExceptionDate: date,
		ShiftID:       &suite.shift.ID,
		Reason:        "Covering a colleague",
		CreatedBy:     suite.user.ID,
	})
	suite.Require().NoError(err)

	row, err := suite.scheduledRepo.GetByUserAndDate(suite.user.ID, date)
	suite.Require().NoError(err)
	suite.Equal(models.ScheduledShiftStatusAssigned, row.Status)
}

// TestShiftOverrideReplacesMaterializedRow tests that overriding a date to a
// different shift leaves exactly one row for that (user, date)
func (suite *ShiftExceptionRepositoryTestSuite) TestShiftOverrideReplacesMaterializedRow() {
	date := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	suite.materialize(date)

	other := suite.factories.Shift.WithTimes("NIGHT", "22:00", "06:00")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	err := suite.repo.UpsertWithReconcile(&models.ShiftException{
		UserID:        suite.user.ID,
		ExceptionDate: date,
		ShiftID:       &other.ID,
		CreatedBy:     suite.user.ID,
	})
	suite.Require().NoError(err)

	rows, err := suite.scheduledRepo.GetByUserInRange(suite.user.ID, date, date)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(other.ID, rows[0].ShiftID)
}

// TestUpsertReplacesExistingException tests that (user, date) is unique
func (suite *ShiftExceptionRepositoryTestSuite) TestUpsertReplacesExistingException() {
	date := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

	err := suite.repo.UpsertWithReconcile(&models.ShiftException{
		UserID:        suite.user.ID,
		ExceptionDate: date,
		ShiftID:       &suite.shift.ID,
		CreatedBy:     suite.user.ID,
	})
	suite.Require().NoError(err)

	err = suite.repo.UpsertWithReconcile(&models.ShiftException{
		UserID:        suite.user.ID,
		ExceptionDate: date,
		IsDayOff:      true,
		Reason:        "Changed plans",
		CreatedBy:     suite.user.ID,
	})
	suite.Require().NoError(err)

	excs, err := suite.repo.GetByUserInRange(suite.user.ID, date, date)
	suite.Require().NoError(err)
	suite.Require().Len(excs, 1)
	suite.True(excs[0].IsDayOff)
	suite.Nil(excs[0].ShiftID)
	suite.Equal("Changed plans", excs[0].Reason)

	// The day-off rewrite must also have removed the row the first override
	// materialized.
	_, err = suite.scheduledRepo.GetByUserAndDate(suite.user.ID, date)
	suite.Error(err)
}

func TestShiftExceptionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftExceptionRepositoryTestSuite))
}

package service_test

import (
	"testing"

	"shift-roster-backend/internal/database/models"
	"shift-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// PatternServiceTestSuite defines the test suite for PatternService
type PatternServiceTestSuite struct {
	suite.Suite
	validator *validator.Validate
}

// SetupTest sets up the test suite
func (suite *PatternServiceTestSuite) SetupTest() {
	suite.validator = validator.New()
}

// TestCreatePatternValidation tests the validation rules for creating a pattern
func (suite *PatternServiceTestSuite) TestCreatePatternValidation() {
	shiftID := uuid.New()

	testCases := []struct {
		name        string
		request     *service.CreatePatternRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "Valid request",
			request: &service.CreatePatternRequest{
				Name:        "Weekday Mornings",
				SectionID:   uuid.New(),
				PatternType: models.PatternTypeFixed,
				Days: []service.PatternDayInput{
					{DayOfWeek: 0, OffDay: true},
					{DayOfWeek: 1, ShiftID: &shiftID},
				},
			},
			expectError: false,
		},
		{
			name: "Missing name",
			request: &service.CreatePatternRequest{
				SectionID:   uuid.New(),
				PatternType: models.PatternTypeFixed,
			},
			expectError: true,
			errorMsg:    "Name",
		},
		{
			name: "Name too short",
			request: &service.CreatePatternRequest{
				Name:        "A",
				SectionID:   uuid.New(),
				PatternType: models.PatternTypeFixed,
			},
			expectError: true,
			errorMsg:    "Name",
		},
		{
			name: "Missing section ID",
			request: &service.CreatePatternRequest{
				Name:        "Weekday Mornings",
				PatternType: models.PatternTypeFixed,
			},
			expectError: true,
			errorMsg:    "SectionID",
		},
		{
			name: "Missing pattern type",
			request: &service.CreatePatternRequest{
				Name:      "Weekday Mornings",
				SectionID: uuid.New(),
			},
			expectError: true,
			errorMsg:    "PatternType",
		},
		{
			name: "Day of week out of range",
			request: &service.CreatePatternRequest{
				Name:        "Weekday Mornings",
				SectionID:   uuid.New(),
				PatternType: models.PatternTypeFixed,
				Days: []service.PatternDayInput{
					{DayOfWeek: 7, ShiftID: &shiftID},
				},
			},
			expectError: true,
			errorMsg:    "DayOfWeek",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.validator.Struct(tc.request)
			if tc.expectError {
				assert.Error(suite.T(), err)
				if tc.errorMsg != "" {
					assert.Contains(suite.T(), err.Error(), tc.errorMsg)
				}
			} else {
				assert.NoError(suite.T(), err)
			}
		})
	}
}

// TestUpdatePatternDayValidation tests the validation rules for weekday edits
func (suite *PatternServiceTestSuite) TestUpdatePatternDayValidation() {
	shiftID := uuid.New()

	testCases := []struct {
		name        string
		request     *service.UpdatePatternDayRequest
		expectError bool
	}{
		{
			name:        "Valid working day",
			request:     &service.UpdatePatternDayRequest{DayOfWeek: 2, ShiftID: &shiftID},
			expectError: false,
		},
		{
			name:        "Valid off day",
			request:     &service.UpdatePatternDayRequest{DayOfWeek: 6, OffDay: true},
			expectError: false,
		},
		{
			name:        "Negative day of week",
			request:     &service.UpdatePatternDayRequest{DayOfWeek: -1, OffDay: true},
			expectError: true,
		},
		{
			name:        "Day of week above Saturday",
			request:     &service.UpdatePatternDayRequest{DayOfWeek: 7, OffDay: true},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.validator.Struct(tc.request)
			if tc.expectError {
				assert.Error(suite.T(), err)
			} else {
				assert.NoError(suite.T(), err)
			}
		})
	}
}

// TestPatternTypeValidity tests the pattern type enum
func (suite *PatternServiceTestSuite) TestPatternTypeValidity() {
	assert.True(suite.T(), models.PatternTypeFixed.IsValid())
	assert.True(suite.T(), models.PatternTypeRotating.IsValid())
	assert.True(suite.T(), models.PatternTypeCustom.IsValid())
	assert.False(suite.T(), models.PatternType("WEEKLY").IsValid())
}

// TestPatternServiceTestSuite runs the test suite
func TestPatternServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PatternServiceTestSuite))
}

package testutils

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// SectionFactory provides methods to create test Section data
type SectionFactory struct{}

// NewSectionFactory creates a new SectionFactory
func NewSectionFactory() *SectionFactory {
	return &SectionFactory{}
}

// Create creates a test Section with default values
func (f *SectionFactory) Create() *models.Section {
	return &models.Section{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Section",
		Description: "A test section for testing purposes",
	}
}

// WithName sets a custom name for the section
func (f *SectionFactory) WithName(name string) *models.Section {
	section := f.Create()
	section.Name = name
	return section
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "John Doe",
		Email:    "john.doe+" + id.String()[:8] + "@test.com",
		Role:     models.UserRoleUser,
		IsActive: true,
	}
}

// WithSection places the user in a section
func (f *UserFactory) WithSection(sectionID uuid.UUID) *models.User {
	user := f.Create()
	user.SectionID = &sectionID
	return user
}

// WithRole sets the user's role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test MORNING shift
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "MORNING",
		StartTime: "07:00",
		EndTime:   "15:00",
		Timezone:  "UTC",
		Color:     "#FFD966",
	}
}

// WithTimes builds a shift with a custom name and time window
func (f *ShiftFactory) WithTimes(name, startTime, endTime string) *models.Shift {
	shift := f.Create()
	shift.Name = name
	shift.StartTime = startTime
	shift.EndTime = endTime
	return shift
}

// PatternFactory provides methods to create test ShiftPattern data
type PatternFactory struct{}

// NewPatternFactory creates a new PatternFactory
func NewPatternFactory() *PatternFactory {
	return &PatternFactory{}
}

// Create creates a test pattern without day rows
func (f *PatternFactory) Create(sectionID uuid.UUID) *models.ShiftPattern {
	return &models.ShiftPattern{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Pattern",
		Description: "A test pattern",
		SectionID:   sectionID,
		PatternType: models.PatternTypeFixed,
		IsActive:    true,
	}
}

// WeekdayDays builds day rows scheduling shiftID Monday through Friday with
// weekends off
func (f *PatternFactory) WeekdayDays(patternID, shiftID uuid.UUID) []models.PatternDay {
	days := make([]models.PatternDay, 0, 7)
	for dow := 0; dow < 7; dow++ {
		day := models.PatternDay{
			PatternID: patternID,
			DayOfWeek: dow,
		}
		if dow == 0 || dow == 6 {
			day.IsOffDay = true
		} else {
			id := shiftID
			day.ShiftID = &id
		}
		days = append(days, day)
	}
	return days
}

// AssignmentFactory provides methods to create test UserShiftAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an active open-ended assignment starting at start
func (f *AssignmentFactory) Create(userID, patternID, assignedBy uuid.UUID, start time.Time) *models.UserShiftAssignment {
	return &models.UserShiftAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:     userID,
		PatternID:  patternID,
		StartDate:  start,
		AssignedBy: assignedBy,
		Status:     models.AssignmentStatusActive,
	}
}

// DaysOffFactory provides methods to create test UserDaysOff data
type DaysOffFactory struct{}

// NewDaysOffFactory creates a new DaysOffFactory
func NewDaysOffFactory() *DaysOffFactory {
	return &DaysOffFactory{}
}

// Create creates a pending days-off range
func (f *DaysOffFactory) Create(userID uuid.UUID, start, end time.Time) *models.UserDaysOff {
	return &models.UserDaysOff{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    "Vacation",
		Status:    models.DaysOffStatusPending,
	}
}

// Approved creates an approved days-off range
func (f *DaysOffFactory) Approved(userID, approvedBy uuid.UUID, start, end time.Time) *models.UserDaysOff {
	daysOff := f.Create(userID, start, end)
	daysOff.Status = models.DaysOffStatusApproved
	daysOff.ApprovedBy = &approvedBy
	return daysOff
}

// FactorySet bundles all test data factories
type FactorySet struct {
	Section    *SectionFactory
	User       *UserFactory
	Shift      *ShiftFactory
	Pattern    *PatternFactory
	Assignment *AssignmentFactory
	DaysOff    *DaysOffFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Section:    NewSectionFactory(),
		User:       NewUserFactory(),
		Shift:      NewShiftFactory(),
		Pattern:    NewPatternFactory(),
		Assignment: NewAssignmentFactory(),
		DaysOff:    NewDaysOffFactory(),
	}
}

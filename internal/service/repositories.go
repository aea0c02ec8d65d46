package service

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// Narrow storage interfaces consumed by the scheduling service. The concrete
// implementations live in internal/repository; tests substitute in-memory
// fakes so the resolution and materialization logic is exercised without a
// database.

// PatternStore provides the pattern reads materialization needs
type PatternStore interface {
	ExistsInSection(patternID, sectionID uuid.UUID) (bool, error)
	GetDays(patternID uuid.UUID) ([]models.PatternDay, error)
}

// AssignmentStore provides user-pattern assignment persistence. The
// supersede-and-materialize sequence is a single method so the store owns its
// transaction scope.
type AssignmentStore interface {
	CreateWithMaterialization(assignment *models.UserShiftAssignment, shifts []models.ScheduledShift) (int, error)
	GetActiveCovering(userID uuid.UUID, date time.Time) (*models.UserShiftAssignment, error)
}

// ScheduledShiftStore provides materialized-shift reads
type ScheduledShiftStore interface {
	GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.ScheduledShift, error)
	GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.ScheduledShift, error)
	GetParticipants(shiftID uuid.UUID, date time.Time) ([]uuid.UUID, error)
}

// ExceptionStore provides single-date exception persistence
type ExceptionStore interface {
	UpsertWithReconcile(exc *models.ShiftException) error
	GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.ShiftException, error)
}

// DaysOffStore provides days-off range persistence
type DaysOffStore interface {
	CreateWithRetraction(daysOff *models.UserDaysOff) error
	ApproveWithRetraction(daysOff *models.UserDaysOff, approvedBy uuid.UUID) error
	GetByID(id uuid.UUID) (*models.UserDaysOff, error)
	HasOverlap(userID uuid.UUID, start, end time.Time) (bool, error)
	GetCovering(userID uuid.UUID, date time.Time, statuses ...models.DaysOffStatus) (*models.UserDaysOff, error)
	GetByUserInRange(userID uuid.UUID, start, end time.Time, statuses ...models.DaysOffStatus) ([]models.UserDaysOff, error)
}

// UserStore provides the user reads scheduling needs
type UserStore interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// ShiftStore provides the shift-catalog reads scheduling needs
type ShiftStore interface {
	GetByID(id uuid.UUID) (*models.Shift, error)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserShiftAssignment binds a user to a pattern over a date range. The row is
// the input the materialization engine expands; it carries no per-day data.
// Superseded assignments are marked ENDED, never deleted.
type UserShiftAssignment struct {
	BaseModel
	UserID     uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	PatternID  uuid.UUID        `json:"pattern_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate  time.Time        `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    *time.Time       `json:"end_date,omitempty" gorm:"type:date"`
	AssignedBy uuid.UUID        `json:"assigned_by" gorm:"type:uuid;not null"`
	Status     AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`

	// Relationships
	User    User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Pattern ShiftPattern `json:"pattern,omitempty" gorm:"foreignKey:PatternID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserShiftAssignment
func (UserShiftAssignment) TableName() string {
	return "user_shift_assignments"
}

// Covers reports whether the assignment's date range includes the given date.
func (a *UserShiftAssignment) Covers(date time.Time) bool {
	if date.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && date.After(*a.EndDate) {
		return false
	}
	return true
}

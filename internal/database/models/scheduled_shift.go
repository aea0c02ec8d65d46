package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledShift is the materialized fact "user X works shift Y on date D".
// The unique index on (shift_id, user_id, date) is the engine's sole
// concurrency guard: materialization inserts with ON CONFLICT DO NOTHING, so
// re-running a bulk assignment or racing materializers leave at most one row.
type ScheduledShift struct {
	BaseModel
	ShiftID        uuid.UUID            `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:uq_scheduled_shift" validate:"required"`
	UserID         uuid.UUID            `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_scheduled_shift;index" validate:"required"`
	Date           time.Time            `json:"date" gorm:"type:date;not null;uniqueIndex:uq_scheduled_shift;index" validate:"required"`
	AssignedBy     uuid.UUID            `json:"assigned_by" gorm:"type:uuid;not null"`
	Status         ScheduledShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'ASSIGNED'"`
	PatternID      *uuid.UUID           `json:"pattern_id,omitempty" gorm:"type:uuid"`
	AssignmentID   *uuid.UUID           `json:"assignment_id,omitempty" gorm:"type:uuid"`
	FromBulkAssign bool                 `json:"from_bulk_assign" gorm:"default:false"`

	// Relationships
	Shift Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduledShift
func (ScheduledShift) TableName() string {
	return "scheduled_shifts"
}

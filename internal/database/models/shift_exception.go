package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftException is a single-date override of a user's pattern: either a
// different shift for that day or a forced day off. Unique per
// (user_id, exception_date); writes upsert in place.
type ShiftException struct {
	BaseModel
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_user_exception_date" validate:"required"`
	ExceptionDate time.Time  `json:"exception_date" gorm:"type:date;not null;uniqueIndex:uq_user_exception_date" validate:"required"`
	ShiftID       *uuid.UUID `json:"shift_id,omitempty" gorm:"type:uuid"`
	IsDayOff      bool       `json:"is_day_off" gorm:"default:false"`
	Reason        string     `json:"reason" gorm:"size:255" validate:"max=255"`
	CreatedBy     uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	User  User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Shift *Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for ShiftException
func (ShiftException) TableName() string {
	return "shift_exceptions"
}

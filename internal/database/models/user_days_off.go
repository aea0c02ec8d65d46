package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDaysOff is a multi-day absence range (vacation, sick leave). Overlapping
// PENDING or APPROVED ranges for the same user are rejected at creation time.
// Approval retracts any scheduled shifts already materialized inside the range.
type UserDaysOff struct {
	BaseModel
	UserID     uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate  time.Time     `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    time.Time     `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Reason     string        `json:"reason" gorm:"size:255" validate:"max=255"`
	Status     DaysOffStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	ApprovedBy *uuid.UUID    `json:"approved_by,omitempty" gorm:"type:uuid"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserDaysOff
func (UserDaysOff) TableName() string {
	return "user_days_off"
}

// Covers reports whether the range includes the given date.
func (d *UserDaysOff) Covers(date time.Time) bool {
	return !date.Before(d.StartDate) && !date.After(d.EndDate)
}

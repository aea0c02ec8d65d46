package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ShiftPattern is a reusable weekly template owned by a section. The pattern
// itself carries no per-user data; PatternDay rows map each day-of-week to a
// shift or an off day.
type ShiftPattern struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description string          `json:"description" gorm:"size:255" validate:"max=255"`
	SectionID   uuid.UUID       `json:"section_id" gorm:"type:uuid;not null;index" validate:"required"`
	PatternType PatternType     `json:"pattern_type" gorm:"type:varchar(20);not null" validate:"required"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedBy   *uuid.UUID      `json:"created_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Section Section      `json:"section,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Days    []PatternDay `json:"days,omitempty" gorm:"foreignKey:PatternID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftPattern
func (ShiftPattern) TableName() string {
	return "shift_patterns"
}

// PatternDay maps one day-of-week of a pattern to a shift or an off day.
// DayOfWeek uses the store convention Sunday=0 .. Saturday=6.
type PatternDay struct {
	BaseModel
	PatternID uuid.UUID  `json:"pattern_id" gorm:"type:uuid;not null;uniqueIndex:uq_pattern_day" validate:"required"`
	DayOfWeek int        `json:"day_of_week" gorm:"not null;uniqueIndex:uq_pattern_day" validate:"min=0,max=6"`
	ShiftID   *uuid.UUID `json:"shift_id,omitempty" gorm:"type:uuid"`
	IsOffDay  bool       `json:"is_off_day" gorm:"default:false"`

	// Relationships
	Shift *Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for PatternDay
func (PatternDay) TableName() string {
	return "shift_pattern_days"
}

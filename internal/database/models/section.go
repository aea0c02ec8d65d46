package models

import (
	"github.com/google/uuid"
)

// Section represents an operational section that owns shift patterns and scopes authorization
type Section struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string     `json:"description" gorm:"size:255" validate:"max=255"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Section
func (Section) TableName() string {
	return "sections"
}

package models

import (
	"github.com/google/uuid"
)

// User represents a roster user. User management itself lives outside this
// service; the row exists because every scheduling record references one.
type User struct {
	BaseModel
	SectionID *uuid.UUID `json:"section_id,omitempty" gorm:"type:uuid;index"`
	FullName  string     `json:"full_name" gorm:"size:150;not null" validate:"required,min=1,max=150"`
	Email     string     `json:"email" gorm:"size:150;not null;uniqueIndex" validate:"required,email"`
	Role      UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	Section *Section `json:"section,omitempty" gorm:"foreignKey:SectionID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

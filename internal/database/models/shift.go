package models

// Shift is a named time-of-day window from the shift catalog. Rows are static
// reference data seeded at bootstrap and never mutated by the scheduling engine.
type Shift struct {
	BaseModel
	Name      string `json:"name" gorm:"size:50;not null;uniqueIndex" validate:"required,min=1,max=50"`
	StartTime string `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime   string `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	Timezone  string `json:"timezone" gorm:"size:50;not null;default:'UTC'"`
	Color     string `json:"color" gorm:"size:20"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// IsOvernight reports whether the shift spans midnight into the next calendar
// day. Times are "HH:MM" strings, so lexicographic comparison is correct.
func (s *Shift) IsOvernight() bool {
	return s.EndTime < s.StartTime
}

package models

// PatternType defines how a shift pattern repeats over the week
type PatternType string

const (
	PatternTypeFixed    PatternType = "FIXED"
	PatternTypeRotating PatternType = "ROTATING"
	PatternTypeCustom   PatternType = "CUSTOM"
)

// AssignmentStatus defines the lifecycle of a user-pattern assignment
type AssignmentStatus string

const (
	AssignmentStatusActive AssignmentStatus = "ACTIVE"
	AssignmentStatusEnded  AssignmentStatus = "ENDED"
)

// ScheduledShiftStatus defines the state of a materialized scheduled shift
type ScheduledShiftStatus string

const (
	ScheduledShiftStatusAssigned  ScheduledShiftStatus = "ASSIGNED"
	ScheduledShiftStatusConfirmed ScheduledShiftStatus = "CONFIRMED"
	ScheduledShiftStatusCancelled ScheduledShiftStatus = "CANCELLED"
)

// DaysOffStatus defines the approval state of a days-off request
type DaysOffStatus string

const (
	DaysOffStatusPending  DaysOffStatus = "PENDING"
	DaysOffStatusApproved DaysOffStatus = "APPROVED"
)

// UserRole defines the authorization role of a roster user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

// IsValid checks if the PatternType is valid
func (p PatternType) IsValid() bool {
	switch p {
	case PatternTypeFixed, PatternTypeRotating, PatternTypeCustom:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusEnded:
		return true
	}
	return false
}

// IsValid checks if the ScheduledShiftStatus is valid
func (s ScheduledShiftStatus) IsValid() bool {
	switch s {
	case ScheduledShiftStatusAssigned, ScheduledShiftStatusConfirmed, ScheduledShiftStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the DaysOffStatus is valid
func (s DaysOffStatus) IsValid() bool {
	switch s {
	case DaysOffStatusPending, DaysOffStatusApproved:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleUser:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may act on other users' schedules.
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}

package service

import (
	"time"

	"shift-roster-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchedulingServiceInterface defines the interface for the scheduling service
type SchedulingServiceInterface interface {
	BulkAssign(claims *auth.Claims, req *BulkAssignRequest) (*BulkAssignResult, error)
	Resolve(userID uuid.UUID, date time.Time) (*Outcome, error)
	SetShiftException(claims *auth.Claims, req *SetExceptionRequest) (*ExceptionResponse, error)
	RegisterDaysOff(claims *auth.Claims, req *RegisterDaysOffRequest) (*DaysOffResponse, error)
	ApproveDaysOff(claims *auth.Claims, id uuid.UUID) (*DaysOffResponse, error)
	GetUserSchedule(claims *auth.Claims, userID uuid.UUID, start, end time.Time) ([]ScheduleEntry, error)
	GetShiftParticipants(shiftID uuid.UUID, date time.Time) ([]uuid.UUID, error)
}

// PatternServiceInterface defines the interface for the pattern service
type PatternServiceInterface interface {
	CreatePattern(claims *auth.Claims, req *CreatePatternRequest) (*PatternResponse, error)
	ListPatterns(claims *auth.Claims, sectionID *uuid.UUID) ([]PatternResponse, error)
	GetPattern(id uuid.UUID) (*PatternResponse, error)
	GetPatternSchedule(id uuid.UUID) (*PatternScheduleResponse, error)
	UpdatePatternDay(claims *auth.Claims, patternID uuid.UUID, req *UpdatePatternDayRequest) error
	DeletePattern(claims *auth.Claims, id uuid.UUID) error
	EnsureStandardPatterns(sectionID uuid.UUID) error
}

// ShiftServiceInterface defines the interface for the shift catalog service
type ShiftServiceInterface interface {
	CreateShift(claims *auth.Claims, req *CreateShiftRequest) (*ShiftResponse, error)
	ListShifts() ([]ShiftResponse, error)
	GetShift(id uuid.UUID) (*ShiftResponse, error)
	EnsureStandardShifts() error
}

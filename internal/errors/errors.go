package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a state conflict, e.g. overlapping days-off ranges.
// The request is rejected with no partial effect.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSectionNotFound        = &NotFoundError{Entity: "section"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrShiftNotFound          = &NotFoundError{Entity: "shift"}
	ErrPatternNotFound        = &NotFoundError{Entity: "shift pattern"}
	ErrPatternDayNotFound     = &NotFoundError{Entity: "pattern day"}
	ErrAssignmentNotFound     = &NotFoundError{Entity: "shift assignment"}
	ErrScheduledShiftNotFound = &NotFoundError{Entity: "scheduled shift"}
	ErrExceptionNotFound      = &NotFoundError{Entity: "shift exception"}
	ErrDaysOffNotFound        = &NotFoundError{Entity: "days-off request"}
)

// Already Exists Errors
var (
	ErrPatternExists   = &AlreadyExistsError{Entity: "shift pattern", Context: "with this name in the section"}
	ErrExceptionExists = &AlreadyExistsError{Entity: "shift exception", Context: "for this user and date"}
)

// Business Logic Errors
var (
	ErrDaysOffOverlap      = &ConflictError{Message: "days off already registered for this period"}
	ErrDaysOffNotPending   = &ConflictError{Message: "days-off request is not pending"}
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrInvalidDayOfWeek    = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrPatternNotInSection = &AuthorizationError{Message: "pattern not found in this section"}
	ErrSectionMismatch     = &AuthorizationError{Message: "caller is not permitted to act on this section"}
	ErrSelfServiceOnly     = &AuthorizationError{Message: "non-privileged callers may only act on their own schedule"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift pattern"}
		assert.Equal(t, "shift pattern not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift pattern"}
		err2 := &NotFoundError{Entity: "shift pattern"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift pattern"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrPatternNotFound, ErrPatternNotFound))
		assert.False(t, errors.Is(ErrPatternNotFound, ErrShiftNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPatternNotFound))
		assert.False(t, IsNotFound(ErrDaysOffOverlap))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrUserNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "shift pattern", Context: "with this name in the section"}
		assert.Equal(t, "shift pattern already exists with this name in the section", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "shift pattern"}
		assert.Equal(t, "shift pattern already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrPatternExists))
		assert.False(t, IsAlreadyExists(ErrPatternNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_date", Message: "must be a valid date"}
		assert.Equal(t, "validation error: start_date - must be a valid date", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "malformed request"}
		assert.Equal(t, "validation error: malformed request", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("end_date", "before start_date")))
		assert.False(t, IsValidation(ErrDaysOffOverlap))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "days off already registered for this period", ErrDaysOffOverlap.Error())
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrDaysOffOverlap))
		assert.True(t, IsConflict(fmt.Errorf("register days off: %w", ErrDaysOffOverlap)))
		assert.False(t, IsConflict(ErrPatternNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrSectionMismatch))
		assert.True(t, IsAuthorization(ErrPatternNotInSection))
		assert.True(t, IsAuthorization(ErrSelfServiceOnly))
		assert.False(t, IsAuthorization(ErrDaysOffOverlap))
	})
}

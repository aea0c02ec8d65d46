package service

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// OutcomeType classifies what a user's day resolves to
type OutcomeType string

const (
	OutcomeWork        OutcomeType = "WORK"
	OutcomeOff         OutcomeType = "OFF"
	OutcomeUnscheduled OutcomeType = "UNSCHEDULED"
)

// OffSource records which layer produced an OFF outcome
type OffSource string

const (
	OffSourceLeave     OffSource = "LEAVE"
	OffSourceException OffSource = "EXCEPTION"
	OffSourcePattern   OffSource = "PATTERN"
)

// Outcome is the result of resolving one (user, date) pair
type Outcome struct {
	Type      OutcomeType `json:"type"`
	ShiftID   *uuid.UUID  `json:"shift_id,omitempty"`
	OffSource OffSource   `json:"off_source,omitempty"`
}

// PatternDayIndex converts a calendar date to the pattern-day index stored on
// PatternDay rows: Sunday=0 through Saturday=6. Go's time.Weekday already
// counts from Sunday, so the conversion is the identity; it still lives behind
// this one function because code ported from Monday=0 calendar conventions
// needs a (weekday+1) mod 7 re-basing here, and inlining the indexing at call
// sites is how that off-by-one slips in. No caller indexes PatternDay directly.
func PatternDayIndex(t time.Time) int {
	return int(t.Weekday())
}

// DateOnly normalizes a timestamp to midnight UTC. All schedule arithmetic
// operates on these normalized dates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// resolveDay applies the precedence order for one day, given the already
// looked-up override state: leave outranks exception outranks pattern.
// leave and exc may be nil; day is the pattern row for the date's day-of-week
// and may be nil when the pattern has no row for that day.
func resolveDay(day *models.PatternDay, exc *models.ShiftException, leave *models.UserDaysOff) Outcome {
	if leave != nil {
		return Outcome{Type: OutcomeOff, OffSource: OffSourceLeave}
	}

	if exc != nil {
		if exc.IsDayOff {
			return Outcome{Type: OutcomeOff, OffSource: OffSourceException}
		}
		if exc.ShiftID != nil {
			return Outcome{Type: OutcomeWork, ShiftID: exc.ShiftID}
		}
		// An exception with neither a shift nor a day-off flag carries no
		// schedule information; fall through to the pattern.
	}

	if day == nil {
		return Outcome{Type: OutcomeUnscheduled}
	}
	if day.IsOffDay {
		return Outcome{Type: OutcomeOff, OffSource: OffSourcePattern}
	}
	if day.ShiftID == nil {
		return Outcome{Type: OutcomeUnscheduled}
	}
	return Outcome{Type: OutcomeWork, ShiftID: day.ShiftID}
}

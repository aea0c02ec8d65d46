package service

import (
	"testing"
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatternDayIndex(t *testing.T) {
	// 2026-02-08 is a Sunday
	sunday := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	expected := []int{0, 1, 2, 3, 4, 5, 6}
	for i, want := range expected {
		date := sunday.AddDate(0, 0, i)
		assert.Equal(t, want, PatternDayIndex(date), "day %s", date.Weekday())
	}

	// Monday must map to 1, not 0: a Monday-based week convention here would
	// shift every materialized shift by one day.
	monday := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 1, PatternDayIndex(monday))
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	stamp := time.Date(2026, 3, 15, 23, 45, 12, 999, loc)

	got := DateOnly(stamp)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, DateOnly(got))
}

func TestResolveDayPrecedence(t *testing.T) {
	patternShift := uuid.New()
	exceptionShift := uuid.New()

	workDay := &models.PatternDay{DayOfWeek: 1, ShiftID: &patternShift}
	offDay := &models.PatternDay{DayOfWeek: 0, IsOffDay: true}
	emptyDay := &models.PatternDay{DayOfWeek: 3}

	leave := &models.UserDaysOff{Status: models.DaysOffStatusApproved}
	dayOffExc := &models.ShiftException{IsDayOff: true}
	shiftExc := &models.ShiftException{ShiftID: &exceptionShift}
	emptyExc := &models.ShiftException{}

	tests := []struct {
		name  string
		day   *models.PatternDay
		exc   *models.ShiftException
		leave *models.UserDaysOff
		want  Outcome
	}{
		{
			name:  "leave outranks everything",
			day:   workDay,
			exc:   shiftExc,
			leave: leave,
			want:  Outcome{Type: OutcomeOff, OffSource: OffSourceLeave},
		},
		{
			name: "day-off exception outranks pattern shift",
			day:  workDay,
			exc:  dayOffExc,
			want: Outcome{Type: OutcomeOff, OffSource: OffSourceException},
		},
		{
			name: "shift exception replaces the pattern's shift",
			day:  workDay,
			exc:  shiftExc,
			want: Outcome{Type: OutcomeWork, ShiftID: &exceptionShift},
		},
		{
			name: "shift exception applies even on a pattern off day",
			day:  offDay,
			exc:  shiftExc,
			want: Outcome{Type: OutcomeWork, ShiftID: &exceptionShift},
		},
		{
			name: "empty exception falls through to the pattern",
			day:  workDay,
			exc:  emptyExc,
			want: Outcome{Type: OutcomeWork, ShiftID: &patternShift},
		},
		{
			name: "pattern work day",
			day:  workDay,
			want: Outcome{Type: OutcomeWork, ShiftID: &patternShift},
		},
		{
			name: "pattern off day",
			day:  offDay,
			want: Outcome{Type: OutcomeOff, OffSource: OffSourcePattern},
		},
		{
			name: "no pattern row",
			want: Outcome{Type: OutcomeUnscheduled},
		},
		{
			name: "pattern row without a shift",
			day:  emptyDay,
			want: Outcome{Type: OutcomeUnscheduled},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveDay(tc.day, tc.exc, tc.leave)
			assert.Equal(t, tc.want, got)
		})
	}
}

package service

import (
	"errors"
	"fmt"
	"time"

	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/database/models"
	apperrors "shift-roster-backend/internal/errors"
	"shift-roster-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchedulingService is the pattern resolution and materialization engine. It
// expands user-pattern assignments into concrete scheduled shifts, applies
// exception and days-off overrides with strict precedence, and serves the
// materialized calendar back to callers.
type SchedulingService struct {
	patterns    PatternStore
	assignments AssignmentStore
	scheduled   ScheduledShiftStore
	exceptions  ExceptionStore
	daysOff     DaysOffStore
	users       UserStore
	shifts      ShiftStore
	validator   *validator.Validate
	horizonDays int
	log         *logger.Logger
}

// NewSchedulingService creates a new scheduling service. horizonDays bounds
// open-ended bulk assignments and the default schedule window.
func NewSchedulingService(
	patterns PatternStore,
	assignments AssignmentStore,
	scheduled ScheduledShiftStore,
	exceptions ExceptionStore,
	daysOff DaysOffStore,
	users UserStore,
	shifts ShiftStore,
	validator *validator.Validate,
	horizonDays int,
) *SchedulingService {
	if horizonDays <= 0 {
		horizonDays = 90
	}
	return &SchedulingService{
		patterns:    patterns,
		assignments: assignments,
		scheduled:   scheduled,
		exceptions:  exceptions,
		daysOff:     daysOff,
		users:       users,
		shifts:      shifts,
		validator:   validator,
		horizonDays: horizonDays,
		log:         logger.New(),
	}
}

// BulkAssignRequest represents the request to assign a pattern to many users
type BulkAssignRequest struct {
	UserIDs   []uuid.UUID `json:"user_ids" validate:"required,min=1"`
	PatternID uuid.UUID   `json:"pattern_id" validate:"required"`
	StartDate time.Time   `json:"start_date" validate:"required"`
	EndDate   *time.Time  `json:"end_date,omitempty"`
	SectionID uuid.UUID   `json:"section_id" validate:"required"`
}

// BulkAssignResult reports the outcome of a bulk assignment. A failure while
// materializing one user is recorded in Errors and does not abort the batch,
// so the caller can retry the failed subset only.
type BulkAssignResult struct {
	Success            bool     `json:"success"`
	AssignmentsCreated int      `json:"assignments_created"`
	ShiftsCreated      int      `json:"shifts_created"`
	Errors             []string `json:"errors"`
}

// BulkAssign binds each user to the pattern and materializes scheduled shifts
// over the date range. Authorization and pattern-section validation fail the
// whole call before any write; per-user failures are isolated. Re-running the
// same request is a no-op thanks to insert-or-ignore on the unique key.
func (s *SchedulingService) BulkAssign(claims *auth.Claims, req *BulkAssignRequest) (*BulkAssignResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !claims.CanManageSection(req.SectionID) {
		return nil, apperrors.ErrSectionMismatch
	}

	start := DateOnly(req.StartDate)
	end := start.AddDate(0, 0, s.horizonDays)
	if req.EndDate != nil {
		end = DateOnly(*req.EndDate)
		if end.Before(start) {
			return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
		}
	}

	ok, err := s.patterns.ExistsInSection(req.PatternID, req.SectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify pattern: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrPatternNotInSection
	}

	days, err := s.patterns.GetDays(req.PatternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern days: %w", err)
	}
	daysByDOW := make(map[int]models.PatternDay, len(days))
	for _, d := range days {
		daysByDOW[d.DayOfWeek] = d
	}

	result := &BulkAssignResult{Success: true, Errors: []string{}}
	for _, userID := range req.UserIDs {
		if err := s.assignUser(claims.UserID, userID, req.PatternID, start, req.EndDate, end, daysByDOW, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("user %s: %v", userID, err))
			s.log.WithField("user_id", userID).Errorf("bulk assign failed for user: %v", err)
		}
	}
	result.Success = len(result.Errors) == 0

	return result, nil
}

// assignUser processes one user of a bulk assignment: every date of the range
// is resolved against the pattern, exceptions and days off first, then the
// supersede of previous assignments, the new binding and the materialized
// rows are committed in one transaction. A failure leaves the user's previous
// binding untouched.
func (s *SchedulingService) assignUser(
	assignedBy, userID, patternID uuid.UUID,
	start time.Time, requestedEnd *time.Time, end time.Time,
	daysByDOW map[int]models.PatternDay,
	result *BulkAssignResult,
) error {
	if _, err := s.users.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}

	var rows []models.ScheduledShift
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day, ok := daysByDOW[PatternDayIndex(date)]
		if !ok || day.IsOffDay || day.ShiftID == nil {
			continue
		}

		// A PENDING range also blocks materialization: work is not scheduled
		// into a window that is likely to be approved away.
		leave, err := s.daysOff.GetCovering(userID, date,
			models.DaysOffStatusApproved, models.DaysOffStatusPending)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check days off for %s: %w", date.Format("2006-01-02"), err)
		}

		exc, err := s.exceptions.GetByUserAndDate(userID, date)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check exception for %s: %w", date.Format("2006-01-02"), err)
		}

		outcome := resolveDay(&day, exc, leave)
		if outcome.Type != OutcomeWork {
			continue
		}

		rows = append(rows, models.ScheduledShift{
			ShiftID:        *outcome.ShiftID,
			UserID:         userID,
			Date:           date,
			AssignedBy:     assignedBy,
			Status:         models.ScheduledShiftStatusAssigned,
			PatternID:      &patternID,
			FromBulkAssign: true,
		})
	}

	assignment := &models.UserShiftAssignment{
		UserID:     userID,
		PatternID:  patternID,
		StartDate:  start,
		AssignedBy: assignedBy,
		Status:     models.AssignmentStatusActive,
	}
	if requestedEnd != nil {
		e := DateOnly(*requestedEnd)
		assignment.EndDate = &e
	}

	created, err := s.assignments.CreateWithMaterialization(assignment, rows)
	if err != nil {
		return fmt.Errorf("failed to assign pattern: %w", err)
	}
	result.AssignmentsCreated++
	result.ShiftsCreated += created

	return nil
}

// Resolve computes one user's outcome for one date by applying the precedence
// order: approved days off, then exception, then the active assignment's
// pattern day. It reads no materialized rows and writes nothing.
func (s *SchedulingService) Resolve(userID uuid.UUID, date time.Time) (*Outcome, error) {
	date = DateOnly(date)

	leave, err := s.daysOff.GetCovering(userID, date, models.DaysOffStatusApproved)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check days off: %w", err)
	}
	if leave != nil {
		outcome := resolveDay(nil, nil, leave)
		return &outcome, nil
	}

	exc, err := s.exceptions.GetByUserAndDate(userID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check exception: %w", err)
	}
	if exc != nil && (exc.IsDayOff || exc.ShiftID != nil) {
		outcome := resolveDay(nil, exc, nil)
		return &outcome, nil
	}

	assignment, err := s.assignments.GetActiveCovering(userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Outcome{Type: OutcomeUnscheduled}, nil
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	days, err := s.patterns.GetDays(assignment.PatternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern days: %w", err)
	}
	var day *models.PatternDay
	for i := range days {
		if days[i].DayOfWeek == PatternDayIndex(date) {
			day = &days[i]
			break
		}
	}

	outcome := resolveDay(day, nil, nil)
	return &outcome, nil
}

// SetExceptionRequest represents the request to override one user's schedule
// for a single date
type SetExceptionRequest struct {
	UserID        uuid.UUID  `json:"user_id" validate:"required"`
	ExceptionDate time.Time  `json:"exception_date" validate:"required"`
	ShiftID       *uuid.UUID `json:"shift_id,omitempty"`
	IsDayOff      bool       `json:"is_day_off"`
	Reason        string     `json:"reason" validate:"max=255"`
}

// ExceptionResponse represents the stored exception
type ExceptionResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	ExceptionDate string     `json:"exception_date"`
	ShiftID       *uuid.UUID `json:"shift_id,omitempty"`
	IsDayOff      bool       `json:"is_day_off"`
	Reason        string     `json:"reason"`
}

// SetShiftException upserts a single-date override and immediately reconciles
// the materialized schedule for that date. Privileged callers only; managers
// may target only users of their own section.
func (s *SchedulingService) SetShiftException(claims *auth.Claims, req *SetExceptionRequest) (*ExceptionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.IsDayOff && req.ShiftID == nil {
		return nil, apperrors.NewValidationError("shift_id", "required unless is_day_off is set")
	}

	if !claims.IsPrivileged() {
		return nil, apperrors.ErrSelfServiceOnly
	}

	user, err := s.users.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !claims.IsAdmin() {
		if user.SectionID == nil || claims.SectionID == nil || *user.SectionID != *claims.SectionID {
			return nil, apperrors.ErrSectionMismatch
		}
	}

	if req.ShiftID != nil {
		if _, err := s.shifts.GetByID(*req.ShiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShiftNotFound
			}
			return nil, fmt.Errorf("failed to verify shift: %w", err)
		}
	}

	exc := &models.ShiftException{
		UserID:        req.UserID,
		ExceptionDate: DateOnly(req.ExceptionDate),
		ShiftID:       req.ShiftID,
		IsDayOff:      req.IsDayOff,
		Reason:        req.Reason,
		CreatedBy:     claims.UserID,
	}
	if exc.IsDayOff {
		exc.ShiftID = nil
	}

	if err := s.exceptions.UpsertWithReconcile(exc); err != nil {
		return nil, fmt.Errorf("failed to set shift exception: %w", err)
	}

	return &ExceptionResponse{
		ID:            exc.ID,
		UserID:        exc.UserID,
		ExceptionDate: exc.ExceptionDate.Format("2006-01-02"),
		ShiftID:       exc.ShiftID,
		IsDayOff:      exc.IsDayOff,
		Reason:        exc.Reason,
	}, nil
}

// RegisterDaysOffRequest represents the request to register an absence range
type RegisterDaysOffRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Reason    string    `json:"reason" validate:"max=255"`
	Approved  bool      `json:"approved"`
}

// DaysOffResponse represents a stored days-off request
type DaysOffResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Reason    string               `json:"reason"`
	Status    models.DaysOffStatus `json:"status"`
}

// RegisterDaysOff registers an absence range. Overlap with any existing
// PENDING or APPROVED range is rejected with no partial effect. A privileged
// caller may approve on submission, which retracts every materialized shift
// inside the range in the same transaction.
func (s *SchedulingService) RegisterDaysOff(claims *auth.Claims, req *RegisterDaysOffRequest) (*DaysOffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	start := DateOnly(req.StartDate)
	end := DateOnly(req.EndDate)
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
	}

	if !claims.IsPrivileged() {
		if req.UserID != claims.UserID {
			return nil, apperrors.ErrSelfServiceOnly
		}
		if req.Approved {
			return nil, apperrors.NewAuthorizationError("only managers may approve days off")
		}
	}

	if _, err := s.users.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	overlap, err := s.daysOff.HasOverlap(req.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping days off: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrDaysOffOverlap
	}

	daysOff := &models.UserDaysOff{
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    models.DaysOffStatusPending,
	}
	if req.Approved {
		daysOff.Status = models.DaysOffStatusApproved
		approver := claims.UserID
		daysOff.ApprovedBy = &approver
	}

	if err := s.daysOff.CreateWithRetraction(daysOff); err != nil {
		return nil, fmt.Errorf("failed to register days off: %w", err)
	}

	return s.toDaysOffResponse(daysOff), nil
}

// ApproveDaysOff approves a pending days-off request and retracts every
// scheduled shift inside its range. Approval is an active retraction of
// previously materialized work, not just a status flag.
func (s *SchedulingService) ApproveDaysOff(claims *auth.Claims, id uuid.UUID) (*DaysOffResponse, error) {
	if !claims.IsPrivileged() {
		return nil, apperrors.ErrSelfServiceOnly
	}

	daysOff, err := s.daysOff.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDaysOffNotFound
		}
		return nil, fmt.Errorf("failed to get days-off request: %w", err)
	}

	if daysOff.Status != models.DaysOffStatusPending {
		return nil, apperrors.ErrDaysOffNotPending
	}

	if err := s.daysOff.ApproveWithRetraction(daysOff, claims.UserID); err != nil {
		return nil, fmt.Errorf("failed to approve days off: %w", err)
	}

	return s.toDaysOffResponse(daysOff), nil
}

// ScheduleEntryType classifies one day of a projected schedule
type ScheduleEntryType string

const (
	ScheduleEntryShift       ScheduleEntryType = "SHIFT"
	ScheduleEntryOffDay      ScheduleEntryType = "OFF_DAY"
	ScheduleEntryUnscheduled ScheduleEntryType = "UNSCHEDULED"
)

// ScheduleEntry is one day of a user's projected calendar
type ScheduleEntry struct {
	Date string            `json:"date"`
	Type ScheduleEntryType `json:"type"`

	// OFF_DAY fields
	Reason string `json:"reason,omitempty"`

	// SHIFT fields
	ShiftID   *uuid.UUID `json:"shift_id,omitempty"`
	ShiftName string     `json:"shift_name,omitempty"`
	StartTime string     `json:"start_time,omitempty"`
	EndTime   string     `json:"end_time,omitempty"`
	Color     string     `json:"color,omitempty"`

	// Shared status: days-off status for OFF_DAY, shift status for SHIFT
	Status string `json:"status,omitempty"`
}

// GetUserSchedule projects the user's effective calendar over [start, end],
// one entry per date in order. The projection reports what was materialized
// (plus approved leave); it does not re-resolve patterns, so it is the
// system's ground-truth view even when rules changed after materialization.
// Zero bounds default to today through the configured horizon.
func (s *SchedulingService) GetUserSchedule(claims *auth.Claims, userID uuid.UUID, start, end time.Time) ([]ScheduleEntry, error) {
	if !claims.IsPrivileged() && claims.UserID != userID {
		return nil, apperrors.ErrSelfServiceOnly
	}

	if start.IsZero() {
		start = time.Now()
	}
	start = DateOnly(start)
	if end.IsZero() {
		end = start.AddDate(0, 0, s.horizonDays)
	}
	end = DateOnly(end)
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
	}

	if _, err := s.users.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	leaves, err := s.daysOff.GetByUserInRange(userID, start, end, models.DaysOffStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to load days off: %w", err)
	}

	shifts, err := s.scheduled.GetByUserInRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled shifts: %w", err)
	}
	shiftsByDate := make(map[string]models.ScheduledShift, len(shifts))
	for _, sh := range shifts {
		shiftsByDate[DateOnly(sh.Date).Format("2006-01-02")] = sh
	}

	var entries []ScheduleEntry
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := date.Format("2006-01-02")

		if leave := coveringLeave(leaves, date); leave != nil {
			entries = append(entries, ScheduleEntry{
				Date:   key,
				Type:   ScheduleEntryOffDay,
				Reason: leave.Reason,
				Status: string(leave.Status),
			})
			continue
		}

		if sh, ok := shiftsByDate[key]; ok {
			shiftID := sh.ShiftID
			entries = append(entries, ScheduleEntry{
				Date:      key,
				Type:      ScheduleEntryShift,
				ShiftID:   &shiftID,
				ShiftName: sh.Shift.Name,
				StartTime: sh.Shift.StartTime,
				EndTime:   sh.Shift.EndTime,
				Color:     sh.Shift.Color,
				Status:    string(sh.Status),
			})
			continue
		}

		entries = append(entries, ScheduleEntry{Date: key, Type: ScheduleEntryUnscheduled})
	}

	return entries, nil
}

// GetShiftParticipants returns the distinct users with a non-cancelled
// materialized shift for (shift, date). The checklist subsystem calls this
// when it opens an instance; it performs no resolution of its own.
func (s *SchedulingService) GetShiftParticipants(shiftID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	if _, err := s.shifts.GetByID(shiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to verify shift: %w", err)
	}

	participants, err := s.scheduled.GetParticipants(shiftID, DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	return participants, nil
}

func (s *SchedulingService) toDaysOffResponse(daysOff *models.UserDaysOff) *DaysOffResponse {
	return &DaysOffResponse{
		ID:        daysOff.ID,
		UserID:    daysOff.UserID,
		StartDate: daysOff.StartDate.Format("2006-01-02"),
		EndDate:   daysOff.EndDate.Format("2006-01-02"),
		Reason:    daysOff.Reason,
		Status:    daysOff.Status,
	}
}

func coveringLeave(leaves []models.UserDaysOff, date time.Time) *models.UserDaysOff {
	for i := range leaves {
		if leaves[i].Covers(date) {
			return &leaves[i]
		}
	}
	return nil
}

package service

import (
	"errors"
	"fmt"

	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/database/models"
	apperrors "shift-roster-backend/internal/errors"
	"shift-roster-backend/internal/logger"
	"shift-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dayNames maps a pattern day index to its calendar name. Index 0 is Sunday.
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// PatternService manages weekly shift patterns and their per-day schedule
type PatternService struct {
	patternRepo *repository.ShiftPatternRepository
	sectionRepo *repository.SectionRepository
	shiftRepo   *repository.ShiftRepository
	validator   *validator.Validate
	log         *logger.Logger
}

// NewPatternService creates a new pattern service
func NewPatternService(
	patternRepo *repository.ShiftPatternRepository,
	sectionRepo *repository.SectionRepository,
	shiftRepo *repository.ShiftRepository,
	validator *validator.Validate,
) *PatternService {
	return &PatternService{
		patternRepo: patternRepo,
		sectionRepo: sectionRepo,
		shiftRepo:   shiftRepo,
		validator:   validator,
		log:         logger.New(),
	}
}

// PatternDayInput configures one weekday of a pattern. A day with neither a
// shift nor the off flag is left undefined.
type PatternDayInput struct {
	DayOfWeek int        `json:"day_of_week" validate:"min=0,max=6"`
	ShiftID   *uuid.UUID `json:"shift_id,omitempty"`
	OffDay    bool       `json:"off_day"`
}

// CreatePatternRequest represents the request to create a weekly pattern
type CreatePatternRequest struct {
	Name        string             `json:"name" validate:"required,min=2,max=100"`
	Description string             `json:"description" validate:"max=500"`
	SectionID   uuid.UUID          `json:"section_id" validate:"required"`
	PatternType models.PatternType `json:"pattern_type" validate:"required"`
	Days        []PatternDayInput  `json:"days" validate:"dive"`
}

// PatternResponse represents a pattern in API responses
type PatternResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	SectionID   uuid.UUID          `json:"section_id"`
	PatternType models.PatternType `json:"pattern_type"`
	IsActive    bool               `json:"is_active"`
}

// PatternScheduleResponse is a pattern denormalized into a day-name-keyed
// weekly schedule
type PatternScheduleResponse struct {
	ID          uuid.UUID                     `json:"id"`
	Name        string                        `json:"name"`
	PatternType models.PatternType            `json:"pattern_type"`
	Schedule    map[string]PatternDaySchedule `json:"schedule"`
}

// PatternDaySchedule is one weekday of a pattern schedule keyed by day name
type PatternDaySchedule struct {
	OffDay    bool   `json:"off_day,omitempty"`
	ShiftName string `json:"shift_name,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Color     string `json:"color,omitempty"`
}

// UpdatePatternDayRequest represents the request to redefine one weekday of a
// pattern
type UpdatePatternDayRequest struct {
	DayOfWeek int        `json:"day_of_week" validate:"min=0,max=6"`
	ShiftID   *uuid.UUID `json:"shift_id,omitempty"`
	OffDay    bool       `json:"off_day"`
}

// CreatePattern creates a pattern together with its weekday rows
func (s *PatternService) CreatePattern(claims *auth.Claims, req *CreatePatternRequest) (*PatternResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.PatternType.IsValid() {
		return nil, apperrors.NewValidationError("pattern_type", "must be FIXED, ROTATING or CUSTOM")
	}
	if !claims.CanManageSection(req.SectionID) {
		return nil, apperrors.ErrSectionMismatch
	}

	if _, err := s.sectionRepo.GetByID(req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to verify section: %w", err)
	}

	existing, err := s.patternRepo.GetBySectionID(req.SectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing patterns: %w", err)
	}
	for _, p := range existing {
		if p.Name == req.Name {
			return nil, apperrors.ErrPatternExists
		}
	}

	days := make([]models.PatternDay, 0, len(req.Days))
	for _, d := range req.Days {
		if d.OffDay && d.ShiftID != nil {
			return nil, apperrors.NewValidationError("days", fmt.Sprintf("%s cannot be both an off day and a shift day", dayNames[d.DayOfWeek]))
		}
		if !d.OffDay && d.ShiftID == nil {
			continue
		}
		if d.ShiftID != nil {
			if _, err := s.shiftRepo.GetByID(*d.ShiftID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperrors.ErrShiftNotFound
				}
				return nil, fmt.Errorf("failed to verify shift: %w", err)
			}
		}
		days = append(days, models.PatternDay{
			DayOfWeek: d.DayOfWeek,
			ShiftID:   d.ShiftID,
			IsOffDay:  d.OffDay,
		})
	}

	creator := claims.UserID
	pattern := &models.ShiftPattern{
		Name:        req.Name,
		Description: req.Description,
		SectionID:   req.SectionID,
		PatternType: req.PatternType,
		IsActive:    true,
		CreatedBy:   &creator,
	}
	if err := s.patternRepo.CreateWithDays(pattern, days); err != nil {
		return nil, fmt.Errorf("failed to create pattern: %w", err)
	}

	s.log.WithField("pattern_id", pattern.ID).Infof("Created shift pattern '%s'", pattern.Name)
	return toPatternResponse(pattern), nil
}

// ListPatterns returns the patterns visible to the caller. Admins see every
// section unless they filter; managers and users are scoped to their own.
func (s *PatternService) ListPatterns(claims *auth.Claims, sectionID *uuid.UUID) ([]PatternResponse, error) {
	if !claims.IsAdmin() {
		if claims.SectionID == nil {
			return []PatternResponse{}, nil
		}
		sectionID = claims.SectionID
	}

	var (
		patterns []models.ShiftPattern
		err      error
	)
	if sectionID != nil {
		patterns, err = s.patternRepo.GetBySectionID(*sectionID)
	} else {
		patterns, err = s.patternRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	responses := make([]PatternResponse, 0, len(patterns))
	for i := range patterns {
		responses = append(responses, *toPatternResponse(&patterns[i]))
	}
	return responses, nil
}

// GetPattern returns a single pattern
func (s *PatternService) GetPattern(id uuid.UUID) (*PatternResponse, error) {
	pattern, err := s.patternRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return toPatternResponse(pattern), nil
}

// GetPatternSchedule returns the pattern's week keyed by day name, Sunday
// through Saturday. Undefined days are omitted.
func (s *PatternService) GetPatternSchedule(id uuid.UUID) (*PatternScheduleResponse, error) {
	pattern, err := s.patternRepo.GetWithDays(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern schedule: %w", err)
	}

	schedule := make(map[string]PatternDaySchedule, len(pattern.Days))
	for _, day := range pattern.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			continue
		}
		name := dayNames[day.DayOfWeek]
		if day.IsOffDay {
			schedule[name] = PatternDaySchedule{OffDay: true}
			continue
		}
		if day.Shift == nil {
			continue
		}
		schedule[name] = PatternDaySchedule{
			ShiftName: day.Shift.Name,
			StartTime: day.Shift.StartTime,
			EndTime:   day.Shift.EndTime,
			Color:     day.Shift.Color,
		}
	}
	return &PatternScheduleResponse{
		ID:          pattern.ID,
		Name:        pattern.Name,
		PatternType: pattern.PatternType,
		Schedule:    schedule,
	}, nil
}

// UpdatePatternDay redefines one weekday of a pattern. The change affects
// future materialization only; rows already scheduled from the old definition
// stay as they are.
func (s *PatternService) UpdatePatternDay(claims *auth.Claims, patternID uuid.UUID, req *UpdatePatternDayRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.OffDay && req.ShiftID != nil {
		return apperrors.NewValidationError("shift_id", "an off day cannot carry a shift")
	}

	pattern, err := s.patternRepo.GetByID(patternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatternNotFound
		}
		return fmt.Errorf("failed to get pattern: %w", err)
	}
	if !claims.CanManageSection(pattern.SectionID) {
		return apperrors.ErrSectionMismatch
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(*req.ShiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrShiftNotFound
			}
			return fmt.Errorf("failed to verify shift: %w", err)
		}
	}

	day := &models.PatternDay{
		PatternID: patternID,
		DayOfWeek: req.DayOfWeek,
		ShiftID:   req.ShiftID,
		IsOffDay:  req.OffDay,
	}
	if err := s.patternRepo.UpsertDay(day); err != nil {
		return fmt.Errorf("failed to update pattern day: %w", err)
	}
	return nil
}

// DeletePattern removes a pattern and its weekday rows. Existing assignments
// and scheduled shifts are untouched.
func (s *PatternService) DeletePattern(claims *auth.Claims, id uuid.UUID) error {
	pattern, err := s.patternRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatternNotFound
		}
		return fmt.Errorf("failed to get pattern: %w", err)
	}
	if !claims.CanManageSection(pattern.SectionID) {
		return apperrors.ErrSectionMismatch
	}
	if err := s.patternRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}
	return nil
}

// EnsureStandardPatterns seeds the section with the three stock patterns if
// it has fewer than three of its own. A MORNING shift must exist in the
// catalog; AFTERNOON and NIGHT are used when present.
func (s *PatternService) EnsureStandardPatterns(sectionID uuid.UUID) error {
	count, err := s.patternRepo.CountBySection(sectionID)
	if err != nil {
		return fmt.Errorf("failed to count patterns: %w", err)
	}
	if count >= 3 {
		return nil
	}

	morning, err := s.shiftRepo.GetByName("MORNING")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("MORNING shift")
		}
		return fmt.Errorf("failed to look up MORNING shift: %w", err)
	}

	afternoon := s.optionalShift("AFTERNOON")
	night := s.optionalShift("NIGHT")

	weekdayMorning := weekdayPattern(sectionID, "Standard Weekday Morning",
		"Morning shifts Monday through Friday with weekends off",
		models.PatternTypeFixed, morning.ID)
	if err := s.patternRepo.CreateWithDays(&weekdayMorning.pattern, weekdayMorning.days); err != nil {
		return fmt.Errorf("failed to seed weekday pattern: %w", err)
	}

	rotating := rotatingPattern(sectionID, morning, afternoon, night)
	if err := s.patternRepo.CreateWithDays(&rotating.pattern, rotating.days); err != nil {
		return fmt.Errorf("failed to seed rotating pattern: %w", err)
	}

	if night != nil {
		weekend := weekendNightPattern(sectionID, night.ID)
		if err := s.patternRepo.CreateWithDays(&weekend.pattern, weekend.days); err != nil {
			return fmt.Errorf("failed to seed weekend pattern: %w", err)
		}
	} else {
		s.log.WithField("section_id", sectionID).Warn("No NIGHT shift in catalog, skipping weekend night pattern")
	}

	return nil
}

func (s *PatternService) optionalShift(name string) *models.Shift {
	shift, err := s.shiftRepo.GetByName(name)
	if err != nil {
		return nil
	}
	return shift
}

type seedPattern struct {
	pattern models.ShiftPattern
	days    []models.PatternDay
}

func weekdayPattern(sectionID uuid.UUID, name, description string, typ models.PatternType, shiftID uuid.UUID) seedPattern {
	sp := seedPattern{pattern: models.ShiftPattern{
		Name:        name,
		Description: description,
		SectionID:   sectionID,
		PatternType: typ,
		IsActive:    true,
	}}
	for dow := 0; dow < 7; dow++ {
		day := models.PatternDay{DayOfWeek: dow}
		if dow == 0 || dow == 6 {
			day.IsOffDay = true
		} else {
			id := shiftID
			day.ShiftID = &id
		}
		sp.days = append(sp.days, day)
	}
	return sp
}

// rotatingPattern alternates morning, afternoon and night over the work week.
// Missing catalog shifts degrade to morning so the pattern stays complete.
func rotatingPattern(sectionID uuid.UUID, morning, afternoon, night *models.Shift) seedPattern {
	pick := func(shift *models.Shift) *uuid.UUID {
		if shift == nil {
			shift = morning
		}
		id := shift.ID
		return &id
	}
	sp := seedPattern{pattern: models.ShiftPattern{
		Name:        "Standard Rotating 3-Shift",
		Description: "Morning, afternoon and night rotation across the work week",
		SectionID:   sectionID,
		PatternType: models.PatternTypeRotating,
		IsActive:    true,
	}}
	sp.days = []models.PatternDay{
		{DayOfWeek: 0, IsOffDay: true},
		{DayOfWeek: 1, ShiftID: pick(morning)},
		{DayOfWeek: 2, ShiftID: pick(morning)},
		{DayOfWeek: 3, ShiftID: pick(afternoon)},
		{DayOfWeek: 4, ShiftID: pick(afternoon)},
		{DayOfWeek: 5, ShiftID: pick(night)},
		{DayOfWeek: 6, IsOffDay: true},
	}
	return sp
}

func weekendNightPattern(sectionID uuid.UUID, nightID uuid.UUID) seedPattern {
	sp := seedPattern{pattern: models.ShiftPattern{
		Name:        "Weekend Night Coverage",
		Description: "Night shifts Friday through Sunday",
		SectionID:   sectionID,
		PatternType: models.PatternTypeFixed,
		IsActive:    true,
	}}
	for dow := 0; dow < 7; dow++ {
		day := models.PatternDay{DayOfWeek: dow}
		if dow == 0 || dow == 5 || dow == 6 {
			id := nightID
			day.ShiftID = &id
		} else {
			day.IsOffDay = true
		}
		sp.days = append(sp.days, day)
	}
	return sp
}

func toPatternResponse(p *models.ShiftPattern) *PatternResponse {
	return &PatternResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SectionID:   p.SectionID,
		PatternType: p.PatternType,
		IsActive:    p.IsActive,
	}
}

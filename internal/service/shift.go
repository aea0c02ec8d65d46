package service

import (
	"errors"
	"fmt"
	"regexp"

	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/database/models"
	apperrors "shift-roster-backend/internal/errors"
	"shift-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ShiftService manages the shift catalog
type ShiftService struct {
	shiftRepo *repository.ShiftRepository
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo *repository.ShiftRepository, validator *validator.Validate) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo, validator: validator}
}

// CreateShiftRequest represents the request to add a shift to the catalog
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Timezone  string `json:"timezone" validate:"max=64"`
	Color     string `json:"color" validate:"max=16"`
}

// ShiftResponse represents a catalog shift
type ShiftResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Timezone    string    `json:"timezone"`
	Color       string    `json:"color"`
	IsOvernight bool      `json:"is_overnight"`
}

// CreateShift adds a shift definition to the catalog. Admins only.
func (s *ShiftService) CreateShift(claims *auth.Claims, req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !claims.IsAdmin() {
		return nil, apperrors.NewAuthorizationError("only admins may manage the shift catalog")
	}
	if !timeOfDayRe.MatchString(req.StartTime) {
		return nil, apperrors.NewValidationError("start_time", "must be HH:MM")
	}
	if !timeOfDayRe.MatchString(req.EndTime) {
		return nil, apperrors.NewValidationError("end_time", "must be HH:MM")
	}

	if _, err := s.shiftRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.NewConflictError("shift with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check shift name: %w", err)
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	shift := &models.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Timezone:  tz,
		Color:     req.Color,
	}
	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// ListShifts returns the whole catalog
func (s *ShiftService) ListShifts() ([]ShiftResponse, error) {
	shifts, err := s.shiftRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	responses := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, *toShiftResponse(&shifts[i]))
	}
	return responses, nil
}

// GetShift returns a single catalog shift
func (s *ShiftService) GetShift(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// EnsureStandardShifts seeds the catalog with the stock MORNING, AFTERNOON
// and NIGHT shifts, skipping any that already exist.
func (s *ShiftService) EnsureStandardShifts() error {
	stock := []models.Shift{
		{Name: "MORNING", StartTime: "07:00", EndTime: "15:00", Timezone: "UTC", Color: "#FFD966"},
		{Name: "AFTERNOON", StartTime: "15:00", EndTime: "23:00", Timezone: "UTC", Color: "#6FA8DC"},
		{Name: "NIGHT", StartTime: "23:00", EndTime: "07:00", Timezone: "UTC", Color: "#8E7CC3"},
	}
	for i := range stock {
		_, err := s.shiftRepo.GetByName(stock[i].Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check shift %s: %w", stock[i].Name, err)
		}
		if err := s.shiftRepo.Create(&stock[i]); err != nil {
			return fmt.Errorf("failed to seed shift %s: %w", stock[i].Name, err)
		}
	}
	return nil
}

func toShiftResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:          shift.ID,
		Name:        shift.Name,
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		Timezone:    shift.Timezone,
		Color:       shift.Color,
		IsOvernight: shift.IsOvernight(),
	}
}

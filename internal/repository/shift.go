package repository

import (
	"strings"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for the shift catalog
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByName retrieves a shift by its case-insensitive name
func (r *ShiftRepository) GetByName(name string) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "LOWER(name) = ?", strings.ToLower(name)).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves the whole shift catalog ordered by start time
func (r *ShiftRepository) GetAll() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

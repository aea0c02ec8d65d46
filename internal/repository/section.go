package repository

import (
	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// Create creates a new section
func (r *SectionRepository) Create(section *models.Section) error {
	return r.db.Create(section).Error
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(id uuid.UUID) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetByName retrieves a section by name
func (r *SectionRepository) GetByName(name string) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetAll retrieves all sections ordered by name
func (r *SectionRepository) GetAll() ([]models.Section, error) {
	var sections []models.Section
	err := r.db.Order("name ASC").Find(&sections).Error
	return sections, err
}

package repository

import (
	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftPatternRepository handles database operations for shift patterns and
// their per-day rows
type ShiftPatternRepository struct {
	db *gorm.DB
}

// NewShiftPatternRepository creates a new shift pattern repository
func NewShiftPatternRepository(db *gorm.DB) *ShiftPatternRepository {
	return &ShiftPatternRepository{db: db}
}

// CreateWithDays creates a pattern and its PatternDay rows in one transaction.
// Day rows use insert-or-ignore on (pattern_id, day_of_week) so a retried
// create cannot produce duplicate days.
func (r *ShiftPatternRepository) CreateWithDays(pattern *models.ShiftPattern, days []models.PatternDay) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pattern).Error; err != nil {
			return err
		}
		for i := range days {
			days[i].PatternID = pattern.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "pattern_id"}, {Name: "day_of_week"}},
				DoNothing: true,
			}).Create(&days[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a pattern by ID
func (r *ShiftPatternRepository) GetByID(id uuid.UUID) (*models.ShiftPattern, error) {
	var pattern models.ShiftPattern
	err := r.db.First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetWithDays retrieves a pattern with its day rows and their shifts preloaded
func (r *ShiftPatternRepository) GetWithDays(id uuid.UUID) (*models.ShiftPattern, error) {
	var pattern models.ShiftPattern
	err := r.db.Preload("Days", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week ASC")
	}).Preload("Days.Shift").First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetAll retrieves all patterns ordered by name
func (r *ShiftPatternRepository) GetAll() ([]models.ShiftPattern, error) {
	var patterns []models.ShiftPattern
	err := r.db.Order("name ASC").Find(&patterns).Error
	return patterns, err
}

// GetBySectionID retrieves all patterns owned by a section
func (r *ShiftPatternRepository) GetBySectionID(sectionID uuid.UUID) ([]models.ShiftPattern, error) {
	var patterns []models.ShiftPattern
	err := r.db.Where("section_id = ?", sectionID).Order("name ASC").Find(&patterns).Error
	return patterns, err
}

// ExistsInSection reports whether the pattern belongs to the given section
func (r *ShiftPatternRepository) ExistsInSection(patternID, sectionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShiftPattern{}).
		Where("id = ? AND section_id = ?", patternID, sectionID).
		Count(&count).Error
	return count > 0, err
}

// CountBySection counts the patterns owned by a section
func (r *ShiftPatternRepository) CountBySection(sectionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShiftPattern{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}

// GetDays retrieves the day rows for a pattern, ordered by day of week
func (r *ShiftPatternRepository) GetDays(patternID uuid.UUID) ([]models.PatternDay, error) {
	var days []models.PatternDay
	err := r.db.Where("pattern_id = ?", patternID).Order("day_of_week ASC").Find(&days).Error
	return days, err
}

// Update updates a pattern's own fields (not its day rows)
func (r *ShiftPatternRepository) Update(pattern *models.ShiftPattern) error {
	return r.db.Save(pattern).Error
}

// UpsertDay replaces the shift/off-day mapping for one day of the pattern.
// Patterns are versionless, so edits happen in place.
func (r *ShiftPatternRepository) UpsertDay(day *models.PatternDay) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pattern_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{"shift_id", "is_off_day", "updated_at"}),
	}).Create(day).Error
}

// Delete deletes a pattern; day rows cascade
func (r *ShiftPatternRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftPattern{}, "id = ?", id).Error
}

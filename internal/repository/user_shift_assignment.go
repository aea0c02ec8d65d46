package repository

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserShiftAssignmentRepository handles database operations for user-pattern
// assignments
type UserShiftAssignmentRepository struct {
	db *gorm.DB
}

// NewUserShiftAssignmentRepository creates a new assignment repository
func NewUserShiftAssignmentRepository(db *gorm.DB) *UserShiftAssignmentRepository {
	return &UserShiftAssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *UserShiftAssignmentRepository) Create(assignment *models.UserShiftAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *UserShiftAssignmentRepository) GetByID(id uuid.UUID) (*models.UserShiftAssignment, error) {
	var assignment models.UserShiftAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetActiveCovering retrieves the user's most recent ACTIVE assignment whose
// date range covers the given date, or gorm.ErrRecordNotFound.
func (r *UserShiftAssignmentRepository) GetActiveCovering(userID uuid.UUID, date time.Time) (*models.UserShiftAssignment, error) {
	var assignment models.UserShiftAssignment
	err := r.db.
		Where("user_id = ? AND status = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)",
			userID, models.AssignmentStatusActive, date, date).
		Order("start_date DESC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByUserID retrieves all assignments for a user, newest first
func (r *UserShiftAssignmentRepository) GetByUserID(userID uuid.UUID) ([]models.UserShiftAssignment, error) {
	var assignments []models.UserShiftAssignment
	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

// EndActive marks every ACTIVE assignment of the user as ENDED. Assignment
// rows are never deleted.
func (r *UserShiftAssignmentRepository) EndActive(userID uuid.UUID) error {
	return r.db.Model(&models.UserShiftAssignment{}).
		Where("user_id = ? AND status = ?", userID, models.AssignmentStatusActive).
		Update("status", models.AssignmentStatusEnded).Error
}

// CreateWithMaterialization binds the user to a new pattern in one
// transaction: previous ACTIVE assignments are marked ENDED, the new
// assignment is created, and the pre-resolved scheduled shifts are inserted
// with insert-or-ignore on the unique (shift_id, user_id, date) key. A failure
// anywhere rolls the whole sequence back, so the user's previous binding is
// never lost to a half-applied supersede. Returns how many rows were newly
// created.
func (r *UserShiftAssignmentRepository) CreateWithMaterialization(assignment *models.UserShiftAssignment, shifts []models.ScheduledShift) (int, error) {
	created := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserShiftAssignment{}).
			Where("user_id = ? AND status = ?", assignment.UserID, models.AssignmentStatusActive).
			Update("status", models.AssignmentStatusEnded).Error; err != nil {
			return err
		}

		if err := tx.Create(assignment).Error; err != nil {
			return err
		}

		for i := range shifts {
			shifts[i].AssignmentID = &assignment.ID
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "shift_id"}, {Name: "user_id"}, {Name: "date"}},
				DoNothing: true,
			}).Create(&shifts[i])
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

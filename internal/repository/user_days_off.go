package repository

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDaysOffRepository handles database operations for days-off ranges
type UserDaysOffRepository struct {
	db *gorm.DB
}

// NewUserDaysOffRepository creates a new days-off repository
func NewUserDaysOffRepository(db *gorm.DB) *UserDaysOffRepository {
	return &UserDaysOffRepository{db: db}
}

// CreateWithRetraction creates the days-off row and, when it is created
// already APPROVED, deletes every scheduled shift of the user inside the
// range. Both writes happen in one transaction so approval is never a status
// flag without the retraction.
func (r *UserDaysOffRepository) CreateWithRetraction(daysOff *models.UserDaysOff) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(daysOff).Error; err != nil {
			return err
		}
		if daysOff.Status == models.DaysOffStatusApproved {
			return tx.Delete(&models.ScheduledShift{},
				"user_id = ? AND date >= ? AND date <= ?",
				daysOff.UserID, daysOff.StartDate, daysOff.EndDate).Error
		}
		return nil
	})
}

// ApproveWithRetraction flips a PENDING request to APPROVED and retracts the
// materialized shifts inside its range, atomically.
func (r *UserDaysOffRepository) ApproveWithRetraction(daysOff *models.UserDaysOff, approvedBy uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		daysOff.Status = models.DaysOffStatusApproved
		daysOff.ApprovedBy = &approvedBy
		if err := tx.Save(daysOff).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ScheduledShift{},
			"user_id = ? AND date >= ? AND date <= ?",
			daysOff.UserID, daysOff.StartDate, daysOff.EndDate).Error
	})
}

// GetByID retrieves a days-off request by ID
func (r *UserDaysOffRepository) GetByID(id uuid.UUID) (*models.UserDaysOff, error) {
	var daysOff models.UserDaysOff
	err := r.db.First(&daysOff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &daysOff, nil
}

// HasOverlap reports whether the user already has a PENDING or APPROVED range
// intersecting [start, end]: existing.start <= end AND existing.end >= start.
func (r *UserDaysOffRepository) HasOverlap(userID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserDaysOff{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ? AND status IN ?",
			userID, end, start, []models.DaysOffStatus{models.DaysOffStatusApproved, models.DaysOffStatusPending}).
		Count(&count).Error
	return count > 0, err
}

// GetCovering retrieves the user's days-off range covering the given date,
// restricted to the given statuses, or gorm.ErrRecordNotFound.
func (r *UserDaysOffRepository) GetCovering(userID uuid.UUID, date time.Time, statuses ...models.DaysOffStatus) (*models.UserDaysOff, error) {
	var daysOff models.UserDaysOff
	err := r.db.
		Where("user_id = ? AND start_date <= ? AND end_date >= ? AND status IN ?", userID, date, date, statuses).
		First(&daysOff).Error
	if err != nil {
		return nil, err
	}
	return &daysOff, nil
}

// GetByUserInRange retrieves the user's days-off ranges intersecting
// [start, end], restricted to the given statuses.
func (r *UserDaysOffRepository) GetByUserInRange(userID uuid.UUID, start, end time.Time, statuses ...models.DaysOffStatus) ([]models.UserDaysOff, error) {
	var ranges []models.UserDaysOff
	err := r.db.
		Where("user_id = ? AND start_date <= ? AND end_date >= ? AND status IN ?", userID, end, start, statuses).
		Order("start_date ASC").Find(&ranges).Error
	return ranges, err
}

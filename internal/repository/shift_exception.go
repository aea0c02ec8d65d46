package repository

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftExceptionRepository handles database operations for single-date
// schedule exceptions
type ShiftExceptionRepository struct {
	db *gorm.DB
}

// NewShiftExceptionRepository creates a new shift exception repository
func NewShiftExceptionRepository(db *gorm.DB) *ShiftExceptionRepository {
	return &ShiftExceptionRepository{db: db}
}

// UpsertWithReconcile writes the exception keyed by (user_id, exception_date)
// and reconciles the materialized schedule for that date in one transaction:
// a day-off exception deletes any scheduled shift for the date, a shift
// override upserts the row and resets its status.
func (r *ShiftExceptionRepository) UpsertWithReconcile(exc *models.ShiftException) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "exception_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"shift_id", "is_day_off", "reason", "updated_at"}),
		}).Create(exc).Error; err != nil {
			return err
		}

		if exc.IsDayOff {
			return tx.Delete(&models.ScheduledShift{},
				"user_id = ? AND date = ?", exc.UserID, exc.ExceptionDate).Error
		}

		if exc.ShiftID != nil {
			// At most one effective scheduled shift per (user, date): a row
			// materialized from a different shift must not survive the override.
			if err := tx.Delete(&models.ScheduledShift{},
				"user_id = ? AND date = ? AND shift_id != ?",
				exc.UserID, exc.ExceptionDate, *exc.ShiftID).Error; err != nil {
				return err
			}
			scheduled := &models.ScheduledShift{
				ShiftID:    *exc.ShiftID,
				UserID:     exc.UserID,
				Date:       exc.ExceptionDate,
				AssignedBy: exc.CreatedBy,
				Status:     models.ScheduledShiftStatusAssigned,
			}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "shift_id"}, {Name: "user_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"status": models.ScheduledShiftStatusAssigned, "updated_at": time.Now()}),
			}).Create(scheduled).Error
		}

		return nil
	})
}

// GetByUserAndDate retrieves the exception for (user, date), or
// gorm.ErrRecordNotFound.
func (r *ShiftExceptionRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.ShiftException, error) {
	var exc models.ShiftException
	err := r.db.Where("user_id = ? AND exception_date = ?", userID, date).First(&exc).Error
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

// GetByUserInRange retrieves the user's exceptions inside [start, end]
func (r *ShiftExceptionRepository) GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.ShiftException, error) {
	var excs []models.ShiftException
	err := r.db.Where("user_id = ? AND exception_date >= ? AND exception_date <= ?", userID, start, end).
		Order("exception_date ASC").Find(&excs).Error
	return excs, err
}

package repository

import (
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduledShiftRepository handles database operations for materialized
// scheduled shifts. The unique index on (shift_id, user_id, date) plus
// insert-or-ignore is the engine's only concurrency guard; none of these
// methods take locks or do read-then-write checks.
type ScheduledShiftRepository struct {
	db *gorm.DB
}

// NewScheduledShiftRepository creates a new scheduled shift repository
func NewScheduledShiftRepository(db *gorm.DB) *ScheduledShiftRepository {
	return &ScheduledShiftRepository{db: db}
}

// InsertIgnore inserts a scheduled shift, ignoring the write when a row for
// (shift_id, user_id, date) already exists. Returns true when a new row was
// created, so re-running a bulk assignment reports zero new rows.
func (r *ScheduledShiftRepository) InsertIgnore(shift *models.ScheduledShift) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "shift_id"}, {Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(shift)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpsertResetStatus inserts a scheduled shift or, when the row already exists,
// resets its status. Used by exception overrides which must win over whatever
// state the row was in.
func (r *ScheduledShiftRepository) UpsertResetStatus(shift *models.ScheduledShift) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "shift_id"}, {Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": shift.Status, "updated_at": time.Now()}),
	}).Create(shift).Error
}

// GetByUserAndDate retrieves the user's scheduled shift for one date with the
// shift preloaded, or gorm.ErrRecordNotFound.
func (r *ScheduledShiftRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.ScheduledShift, error) {
	var shift models.ScheduledShift
	err := r.db.Preload("Shift").
		Where("user_id = ? AND date = ?", userID, date).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByUserInRange retrieves the user's scheduled shifts in [start, end] with
// shifts preloaded, ordered by date.
func (r *ScheduledShiftRepository) GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.ScheduledShift, error) {
	var shifts []models.ScheduledShift
	err := r.db.Preload("Shift").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&shifts).Error
	return shifts, err
}

// DeleteForUserOnDate deletes the user's scheduled shifts for one date
func (r *ScheduledShiftRepository) DeleteForUserOnDate(userID uuid.UUID, date time.Time) error {
	return r.db.Delete(&models.ScheduledShift{}, "user_id = ? AND date = ?", userID, date).Error
}

// DeleteForUserInRange deletes every scheduled shift of the user inside
// [start, end]. This is the retraction path taken when days off are approved.
func (r *ScheduledShiftRepository) DeleteForUserInRange(userID uuid.UUID, start, end time.Time) error {
	return r.db.Delete(&models.ScheduledShift{}, "user_id = ? AND date >= ? AND date <= ?", userID, start, end).Error
}

// GetParticipants returns the distinct user IDs with a non-cancelled scheduled
// shift for (shift_id, date). This is the read the checklist subsystem performs
// when opening an instance for a date and shift.
func (r *ScheduledShiftRepository) GetParticipants(shiftID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	err := r.db.Model(&models.ScheduledShift{}).
		Distinct("user_id").
		Where("shift_id = ? AND date = ? AND status != ?", shiftID, date, models.ScheduledShiftStatusCancelled).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

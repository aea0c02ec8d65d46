package service_test

import (
	"sort"
	"time"

	"shift-roster-backend/internal/database/models"
	"shift-roster-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory stand-ins for the repository layer. They reproduce the storage
// contracts the scheduling service relies on, in particular the unique
// (shift_id, user_id, date) key with insert-or-ignore semantics, so the
// resolution and materialization logic runs against real state without a
// database.

type scheduledKey struct {
	shiftID uuid.UUID
	userID  uuid.UUID
	date    string
}

type fakeScheduledStore struct {
	rows   map[scheduledKey]*models.ScheduledShift
	shifts map[uuid.UUID]models.Shift
}

func newFakeScheduledStore(shifts map[uuid.UUID]models.Shift) *fakeScheduledStore {
	return &fakeScheduledStore{
		rows:   make(map[scheduledKey]*models.ScheduledShift),
		shifts: shifts,
	}
}

func keyFor(shiftID, userID uuid.UUID, date time.Time) scheduledKey {
	return scheduledKey{
		shiftID: shiftID,
		userID:  userID,
		date:    service.DateOnly(date).Format("2006-01-02"),
	}
}

func (f *fakeScheduledStore) InsertIgnore(shift *models.ScheduledShift) (bool, error) {
	key := keyFor(shift.ShiftID, shift.UserID, shift.Date)
	if _, ok := f.rows[key]; ok {
		return false, nil
	}
	row := *shift
	row.ID = uuid.New()
	row.Date = service.DateOnly(shift.Date)
	f.rows[key] = &row
	return true, nil
}

func (f *fakeScheduledStore) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.ScheduledShift, error) {
	day := service.DateOnly(date)
	for _, row := range f.rows {
		if row.UserID == userID && row.Date.Equal(day) {
			out := *row
			out.Shift = f.shifts[row.ShiftID]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduledStore) GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.ScheduledShift, error) {
	var out []models.ScheduledShift
	for _, row := range f.rows {
		if row.UserID == userID && !row.Date.Before(start) && !row.Date.After(end) {
			copied := *row
			copied.Shift = f.shifts[row.ShiftID]
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeScheduledStore) GetParticipants(shiftID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	day := service.DateOnly(date)
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, row := range f.rows {
		if row.ShiftID == shiftID && row.Date.Equal(day) && row.Status != models.ScheduledShiftStatusCancelled && !seen[row.UserID] {
			seen[row.UserID] = true
			out = append(out, row.UserID)
		}
	}
	return out, nil
}

func (f *fakeScheduledStore) deleteOnDate(userID uuid.UUID, date time.Time) {
	day := service.DateOnly(date)
	for key, row := range f.rows {
		if row.UserID == userID && row.Date.Equal(day) {
			delete(f.rows, key)
		}
	}
}

func (f *fakeScheduledStore) deleteInRange(userID uuid.UUID, start, end time.Time) {
	for key, row := range f.rows {
		if row.UserID == userID && !row.Date.Before(start) && !row.Date.After(end) {
			delete(f.rows, key)
		}
	}
}

func (f *fakeScheduledStore) countForUser(userID uuid.UUID) int {
	n := 0
	for _, row := range f.rows {
		if row.UserID == userID {
			n++
		}
	}
	return n
}

type fakePatternStore struct {
	sections map[uuid.UUID]uuid.UUID
	days     map[uuid.UUID][]models.PatternDay
}

func newFakePatternStore() *fakePatternStore {
	return &fakePatternStore{
		sections: make(map[uuid.UUID]uuid.UUID),
		days:     make(map[uuid.UUID][]models.PatternDay),
	}
}

func (f *fakePatternStore) ExistsInSection(patternID, sectionID uuid.UUID) (bool, error) {
	section, ok := f.sections[patternID]
	return ok && section == sectionID, nil
}

func (f *fakePatternStore) GetDays(patternID uuid.UUID) ([]models.PatternDay, error) {
	return f.days[patternID], nil
}

type fakeAssignmentStore struct {
	assignments []*models.UserShiftAssignment
	scheduled   *fakeScheduledStore
	createErr   error
}

func (f *fakeAssignmentStore) CreateWithMaterialization(assignment *models.UserShiftAssignment, shifts []models.ScheduledShift) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, a := range f.assignments {
		if a.UserID == assignment.UserID && a.Status == models.AssignmentStatusActive {
			a.Status = models.AssignmentStatusEnded
		}
	}
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	f.assignments = append(f.assignments, assignment)
	created := 0
	for i := range shifts {
		shifts[i].AssignmentID = &assignment.ID
		ok, err := f.scheduled.InsertIgnore(&shifts[i])
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (f *fakeAssignmentStore) GetActiveCovering(userID uuid.UUID, date time.Time) (*models.UserShiftAssignment, error) {
	var best *models.UserShiftAssignment
	for _, a := range f.assignments {
		if a.UserID != userID || a.Status != models.AssignmentStatusActive || !a.Covers(date) {
			continue
		}
		if best == nil || a.StartDate.After(best.StartDate) {
			best = a
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	out := *best
	return &out, nil
}

type excKey struct {
	userID uuid.UUID
	date   string
}

type fakeExceptionStore struct {
	excs      map[excKey]*models.ShiftException
	scheduled *fakeScheduledStore
}

func newFakeExceptionStore(scheduled *fakeScheduledStore) *fakeExceptionStore {
	return &fakeExceptionStore{
		excs:      make(map[excKey]*models.ShiftException),
		scheduled: scheduled,
	}
}

func (f *fakeExceptionStore) UpsertWithReconcile(exc *models.ShiftException) error {
	if exc.ID == uuid.Nil {
		exc.ID = uuid.New()
	}
	exc.ExceptionDate = service.DateOnly(exc.ExceptionDate)
	key := excKey{userID: exc.UserID, date: exc.ExceptionDate.Format("2006-01-02")}
	if existing, ok := f.excs[key]; ok {
		exc.ID = existing.ID
	}
	stored := *exc
	f.excs[key] = &stored

	if exc.IsDayOff {
		f.scheduled.deleteOnDate(exc.UserID, exc.ExceptionDate)
		return nil
	}
	if exc.ShiftID != nil {
		for key, row := range f.scheduled.rows {
			if row.UserID == exc.UserID && row.Date.Equal(exc.ExceptionDate) && row.ShiftID != *exc.ShiftID {
				delete(f.scheduled.rows, key)
			}
		}
		rowKey := keyFor(*exc.ShiftID, exc.UserID, exc.ExceptionDate)
		if row, ok := f.scheduled.rows[rowKey]; ok {
			row.Status = models.ScheduledShiftStatusAssigned
			return nil
		}
		f.scheduled.rows[rowKey] = &models.ScheduledShift{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			ShiftID:    *exc.ShiftID,
			UserID:     exc.UserID,
			Date:       exc.ExceptionDate,
			AssignedBy: exc.CreatedBy,
			Status:     models.ScheduledShiftStatusAssigned,
		}
	}
	return nil
}

func (f *fakeExceptionStore) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.ShiftException, error) {
	key := excKey{userID: userID, date: service.DateOnly(date).Format("2006-01-02")}
	if exc, ok := f.excs[key]; ok {
		out := *exc
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeDaysOffStore struct {
	ranges    []*models.UserDaysOff
	scheduled *fakeScheduledStore
}

func newFakeDaysOffStore(scheduled *fakeScheduledStore) *fakeDaysOffStore {
	return &fakeDaysOffStore{scheduled: scheduled}
}

func (f *fakeDaysOffStore) CreateWithRetraction(daysOff *models.UserDaysOff) error {
	if daysOff.ID == uuid.Nil {
		daysOff.ID = uuid.New()
	}
	f.ranges = append(f.ranges, daysOff)
	if daysOff.Status == models.DaysOffStatusApproved {
		f.scheduled.deleteInRange(daysOff.UserID, daysOff.StartDate, daysOff.EndDate)
	}
	return nil
}

func (f *fakeDaysOffStore) ApproveWithRetraction(daysOff *models.UserDaysOff, approvedBy uuid.UUID) error {
	for _, r := range f.ranges {
		if r.ID == daysOff.ID {
			r.Status = models.DaysOffStatusApproved
			r.ApprovedBy = &approvedBy
		}
	}
	daysOff.Status = models.DaysOffStatusApproved
	daysOff.ApprovedBy = &approvedBy
	f.scheduled.deleteInRange(daysOff.UserID, daysOff.StartDate, daysOff.EndDate)
	return nil
}

func (f *fakeDaysOffStore) GetByID(id uuid.UUID) (*models.UserDaysOff, error) {
	for _, r := range f.ranges {
		if r.ID == id {
			out := *r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDaysOffStore) HasOverlap(userID uuid.UUID, start, end time.Time) (bool, error) {
	for _, r := range f.ranges {
		if r.UserID != userID {
			continue
		}
		if r.Status != models.DaysOffStatusPending && r.Status != models.DaysOffStatusApproved {
			continue
		}
		if !r.StartDate.After(end) && !r.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDaysOffStore) GetCovering(userID uuid.UUID, date time.Time, statuses ...models.DaysOffStatus) (*models.UserDaysOff, error) {
	day := service.DateOnly(date)
	for _, r := range f.ranges {
		if r.UserID != userID || !r.Covers(day) {
			continue
		}
		for _, status := range statuses {
			if r.Status == status {
				out := *r
				return &out, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDaysOffStore) GetByUserInRange(userID uuid.UUID, start, end time.Time, statuses ...models.DaysOffStatus) ([]models.UserDaysOff, error) {
	var out []models.UserDaysOff
	for _, r := range f.ranges {
		if r.UserID != userID {
			continue
		}
		if r.StartDate.After(end) || r.EndDate.Before(start) {
			continue
		}
		for _, status := range statuses {
			if r.Status == status {
				out = append(out, *r)
				break
			}
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserStore) GetByID(id uuid.UUID) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		out := *user
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeShiftStore struct {
	shifts map[uuid.UUID]models.Shift
}

func (f *fakeShiftStore) GetByID(id uuid.UUID) (*models.Shift, error) {
	if shift, ok := f.shifts[id]; ok {
		out := shift
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

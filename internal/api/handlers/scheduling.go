package handlers

import (
	"net/http"
	"time"

	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// SchedulingHandler handles HTTP requests for schedule materialization,
// exceptions, days off and schedule projection
type SchedulingHandler struct {
	schedulingService service.SchedulingServiceInterface
}

// NewSchedulingHandler creates a new scheduling handler
func NewSchedulingHandler(schedulingService service.SchedulingServiceInterface) *SchedulingHandler {
	return &SchedulingHandler{
		schedulingService: schedulingService,
	}
}

// BulkAssignBody is the wire form of a bulk assignment request. Dates travel
// as YYYY-MM-DD strings.
type BulkAssignBody struct {
	UserIDs   []uuid.UUID `json:"user_ids" binding:"required"`
	PatternID uuid.UUID   `json:"pattern_id" binding:"required"`
	StartDate string      `json:"start_date" binding:"required"`
	EndDate   *string     `json:"end_date,omitempty"`
	SectionID uuid.UUID   `json:"section_id" binding:"required"`
}

// BulkAssign handles POST /schedule/bulk-assign
// @Summary Assign a pattern to users and materialize their shifts
// @Description Bind each user to the pattern and create scheduled shift rows over the date range. Safe to retry; existing rows are left untouched.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body BulkAssignBody true "Assignment request"
// @Success 200 {object} service.BulkAssignResult "Assignment outcome, including per-user errors"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 403 {object} map[string]interface{} "Caller cannot manage the target section or pattern is outside it"
// @Security BearerAuth
// @Router /schedule/bulk-assign [post]
func (h *SchedulingHandler) BulkAssign(c *gin.Context) {
	var body BulkAssignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	req := &service.BulkAssignRequest{
		UserIDs:   body.UserIDs,
		PatternID: body.PatternID,
		StartDate: start,
		SectionID: body.SectionID,
	}
	if body.EndDate != nil {
		end, err := time.Parse(dateLayout, *body.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		req.EndDate = &end
	}

	result, err := h.schedulingService.BulkAssign(auth.CurrentClaims(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetExceptionBody is the wire form of a shift exception request
type SetExceptionBody struct {
	UserID        uuid.UUID  `json:"user_id" binding:"required"`
	ExceptionDate string     `json:"exception_date" binding:"required"`
	ShiftID       *uuid.UUID `json:"shift_id,omitempty"`
	IsDayOff      bool       `json:"is_day_off"`
	Reason        string     `json:"reason"`
}

// SetShiftException handles POST /schedule/exceptions
// @Summary Override one user's schedule for a single date
// @Description Upsert a single-date exception and reconcile the materialized schedule for that date immediately
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body SetExceptionBody true "Exception request"
// @Success 200 {object} service.ExceptionResponse "Stored exception"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 403 {object} map[string]interface{} "Manager or admin role required"
// @Failure 404 {object} map[string]interface{} "User or shift not found"
// @Security BearerAuth
// @Router /schedule/exceptions [post]
func (h *SchedulingHandler) SetShiftException(c *gin.Context) {
	var body SetExceptionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, body.ExceptionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exception_date must be YYYY-MM-DD"})
		return
	}

	exc, err := h.schedulingService.SetShiftException(auth.CurrentClaims(c), &service.SetExceptionRequest{
		UserID:        body.UserID,
		ExceptionDate: date,
		ShiftID:       body.ShiftID,
		IsDayOff:      body.IsDayOff,
		Reason:        body.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exc)
}

// RegisterDaysOffBody is the wire form of a days-off registration
type RegisterDaysOffBody struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Reason    string    `json:"reason"`
	Approved  bool      `json:"approved"`
}

// RegisterDaysOff handles POST /schedule/days-off
// @Summary Register a days-off range
// @Description Register an absence range for a user. Overlapping PENDING or APPROVED ranges are rejected. Privileged callers may approve on submission, which retracts scheduled shifts in the range.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body RegisterDaysOffBody true "Days-off request"
// @Success 201 {object} service.DaysOffResponse "Stored days-off request"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 403 {object} map[string]interface{} "Users may only register their own unapproved days off"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "Range overlaps an existing request"
// @Security BearerAuth
// @Router /schedule/days-off [post]
func (h *SchedulingHandler) RegisterDaysOff(c *gin.Context) {
	var body RegisterDaysOffBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	daysOff, err := h.schedulingService.RegisterDaysOff(auth.CurrentClaims(c), &service.RegisterDaysOffRequest{
		UserID:    body.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    body.Reason,
		Approved:  body.Approved,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, daysOff)
}

// ApproveDaysOff handles POST /schedule/days-off/:id/approve
// @Summary Approve a pending days-off request
// @Description Approve the request and retract every scheduled shift inside its range
// @Tags schedule
// @Produce json
// @Param id path string true "Days-off request ID"
// @Success 200 {object} service.DaysOffResponse "Approved request"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 403 {object} map[string]interface{} "Manager or admin role required"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 409 {object} map[string]interface{} "Request is not pending"
// @Security BearerAuth
// @Router /schedule/days-off/{id}/approve [post]
func (h *SchedulingHandler) ApproveDaysOff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days-off ID"})
		return
	}

	daysOff, err := h.schedulingService.ApproveDaysOff(auth.CurrentClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, daysOff)
}

// GetUserSchedule handles GET /schedule/users/:id
// @Summary Get a user's projected schedule
// @Description Get one entry per date in the range, classified as SHIFT, OFF_DAY or UNSCHEDULED. Defaults to today through the configured horizon.
// @Tags schedule
// @Produce json
// @Param id path string true "User ID"
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} service.ScheduleEntry "Projected schedule"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 403 {object} map[string]interface{} "Users may only view their own schedule"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /schedule/users/{id} [get]
func (h *SchedulingHandler) GetUserSchedule(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var start, end time.Time
	if raw := c.Query("start_date"); raw != "" {
		if start, err = time.Parse(dateLayout, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if end, err = time.Parse(dateLayout, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
	}

	entries, err := h.schedulingService.GetUserSchedule(auth.CurrentClaims(c), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ResolveDay handles GET /schedule/users/:id/resolve
// @Summary Resolve a user's effective outcome for one date
// @Description Apply days-off, exception and pattern precedence for the date without touching materialized rows
// @Tags schedule
// @Produce json
// @Param id path string true "User ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.Outcome "Resolved outcome"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /schedule/users/{id}/resolve [get]
func (h *SchedulingHandler) ResolveDay(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	outcome, err := h.schedulingService.Resolve(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// GetShiftParticipants handles GET /schedule/shifts/:id/participants
// @Summary List the users scheduled for a shift on a date
// @Description Get the distinct users with a non-cancelled scheduled shift for the shift and date
// @Tags schedule
// @Produce json
// @Param id path string true "Shift ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Participant user IDs"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /schedule/shifts/{id}/participants [get]
func (h *SchedulingHandler) GetShiftParticipants(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	participants, err := h.schedulingService.GetShiftParticipants(shiftID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_ids": participants, "count": len(participants)})
}

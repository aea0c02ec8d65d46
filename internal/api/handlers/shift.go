package handlers

import (
	"net/http"

	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for the shift catalog
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// CreateShift handles POST /shifts
// @Summary Create a shift definition
// @Description Add a named shift with start and end times to the catalog
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body service.CreateShiftRequest true "Shift definition"
// @Success 201 {object} service.ShiftResponse "Shift created"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 409 {object} map[string]interface{} "Shift name already in use"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.CreateShift(auth.CurrentClaims(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// ListShifts handles GET /shifts
// @Summary List shift definitions
// @Description Get every shift in the catalog
// @Tags shifts
// @Produce json
// @Success 200 {array} service.ShiftResponse "Successfully retrieved shifts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftService.ListShifts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetShift handles GET /shifts/:id
// @Summary Get a shift definition
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	shift, err := h.shiftService.GetShift(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

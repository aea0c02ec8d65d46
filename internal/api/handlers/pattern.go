package handlers

import (
	"net/http"

	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatternHandler handles HTTP requests for shift pattern operations
type PatternHandler struct {
	patternService service.PatternServiceInterface
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(patternService service.PatternServiceInterface) *PatternHandler {
	return &PatternHandler{
		patternService: patternService,
	}
}

// CreatePattern handles POST /patterns
// @Summary Create a weekly shift pattern
// @Description Create a pattern with its per-weekday shift or off-day rows
// @Tags patterns
// @Accept json
// @Produce json
// @Param request body service.CreatePatternRequest true "Pattern definition"
// @Success 201 {object} service.PatternResponse "Pattern created"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 403 {object} map[string]interface{} "Caller cannot manage the target section"
// @Failure 404 {object} map[string]interface{} "Section or shift not found"
// @Security BearerAuth
// @Router /patterns [post]
func (h *PatternHandler) CreatePattern(c *gin.Context) {
	var req service.CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pattern, err := h.patternService.CreatePattern(auth.CurrentClaims(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pattern)
}

// ListPatterns handles GET /patterns
// @Summary List shift patterns
// @Description Get the patterns visible to the caller, optionally filtered by section
// @Tags patterns
// @Produce json
// @Param section_id query string false "Section ID filter"
// @Success 200 {array} service.PatternResponse "Successfully retrieved patterns"
// @Failure 400 {object} map[string]interface{} "Invalid section ID"
// @Security BearerAuth
// @Router /patterns [get]
func (h *PatternHandler) ListPatterns(c *gin.Context) {
	var sectionID *uuid.UUID
	if raw := c.Query("section_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section ID"})
			return
		}
		sectionID = &id
	}

	patterns, err := h.patternService.ListPatterns(auth.CurrentClaims(c), sectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// GetPattern handles GET /patterns/:id
// @Summary Get a shift pattern
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID"
// @Success 200 {object} service.PatternResponse "Successfully retrieved pattern"
// @Failure 400 {object} map[string]interface{} "Invalid pattern ID"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Security BearerAuth
// @Router /patterns/{id} [get]
func (h *PatternHandler) GetPattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	pattern, err := h.patternService.GetPattern(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// GetPatternSchedule handles GET /patterns/:id/schedule
// @Summary Get a pattern's weekly schedule
// @Description Get the pattern's week keyed by day name with shift details
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID"
// @Success 200 {object} service.PatternScheduleResponse "Weekly schedule"
// @Failure 400 {object} map[string]interface{} "Invalid pattern ID"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Security BearerAuth
// @Router /patterns/{id}/schedule [get]
func (h *PatternHandler) GetPatternSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	schedule, err := h.patternService.GetPatternSchedule(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdatePatternDay handles PUT /patterns/:id/days
// @Summary Redefine one weekday of a pattern
// @Description Upsert the shift or off-day flag for a single weekday; affects future materialization only
// @Tags patterns
// @Accept json
// @Produce json
// @Param id path string true "Pattern ID"
// @Param request body service.UpdatePatternDayRequest true "Day definition"
// @Success 200 {object} map[string]interface{} "Day updated"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 403 {object} map[string]interface{} "Caller cannot manage the pattern's section"
// @Failure 404 {object} map[string]interface{} "Pattern or shift not found"
// @Security BearerAuth
// @Router /patterns/{id}/days [put]
func (h *PatternHandler) UpdatePatternDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	var req service.UpdatePatternDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.patternService.UpdatePatternDay(auth.CurrentClaims(c), id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pattern day updated"})
}

// DeletePattern handles DELETE /patterns/:id
// @Summary Delete a shift pattern
// @Description Remove the pattern and its weekday rows; existing scheduled shifts are untouched
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID"
// @Success 200 {object} map[string]interface{} "Pattern deleted"
// @Failure 400 {object} map[string]interface{} "Invalid pattern ID"
// @Failure 403 {object} map[string]interface{} "Caller cannot manage the pattern's section"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Security BearerAuth
// @Router /patterns/{id} [delete]
func (h *PatternHandler) DeletePattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	if err := h.patternService.DeletePattern(auth.CurrentClaims(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pattern deleted"})
}

// EnsureStandardPatterns handles POST /sections/:id/standard-patterns
// @Summary Seed the stock patterns for a section
// @Description Create the three standard patterns if the section has fewer than three of its own
// @Tags patterns
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} map[string]interface{} "Patterns ensured"
// @Failure 400 {object} map[string]interface{} "Invalid section ID"
// @Failure 404 {object} map[string]interface{} "MORNING shift missing from catalog"
// @Security BearerAuth
// @Router /sections/{id}/standard-patterns [post]
func (h *PatternHandler) EnsureStandardPatterns(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section ID"})
		return
	}

	if err := h.patternService.EnsureStandardPatterns(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "standard patterns ensured"})
}

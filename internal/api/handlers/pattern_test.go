package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shift-roster-backend/internal/api/handlers"
	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/database/models"
	apperrors "shift-roster-backend/internal/errors"
	"shift-roster-backend/internal/mocks"
	"shift-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PatternHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockPatternServiceInterface
	handler *handlers.PatternHandler
	claims  *auth.Claims
}

func (suite *PatternHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSvc = mocks.NewMockPatternServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPatternHandler(suite.mockSvc)
	sectionID := uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "admin@example.com",
		Role:      models.UserRoleAdmin,
		SectionID: &sectionID,
	}
}

func (suite *PatternHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PatternHandlerTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.ClaimsContextKey, suite.claims)
		c.Next()
	})
	r.POST("/patterns", suite.handler.CreatePattern)
	r.GET("/patterns", suite.handler.ListPatterns)
	r.GET("/patterns/:id", suite.handler.GetPattern)
	r.GET("/patterns/:id/schedule", suite.handler.GetPatternSchedule)
	r.PUT("/patterns/:id/days", suite.handler.UpdatePatternDay)
	r.DELETE("/patterns/:id", suite.handler.DeletePattern)
	return r
}

func (suite *PatternHandlerTestSuite) TestCreatePattern_Success() {
	router := suite.newRouter()
	sectionID := uuid.New()
	shiftID := uuid.New()

	suite.mockSvc.EXPECT().
		CreatePattern(suite.claims, gomock.Any()).
		DoAndReturn(func(_ *auth.Claims, req *service.CreatePatternRequest) (*service.PatternResponse, error) {
			assert.Equal(suite.T(), "Weekday Morning", req.Name)
			assert.Equal(suite.T(), models.PatternTypeFixed, req.PatternType)
			assert.Len(suite.T(), req.Days, 2)
			return &service.PatternResponse{
				ID: uuid.New(), Name: req.Name, SectionID: sectionID,
				PatternType: req.PatternType, IsActive: true,
			}, nil
		})

	body := `{"name":"Weekday Morning","section_id":"` + sectionID.String() +
		`","pattern_type":"FIXED","days":[{"day_of_week":1,"shift_id":"` + shiftID.String() +
		`"},{"day_of_week":0,"off_day":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/patterns", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var resp service.PatternResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Weekday Morning", resp.Name)
}

func (suite *PatternHandlerTestSuite) TestListPatterns_WithSectionFilter() {
	router := suite.newRouter()
	sectionID := uuid.New()

	suite.mockSvc.EXPECT().
		ListPatterns(suite.claims, gomock.Any()).
		DoAndReturn(func(_ *auth.Claims, filter *uuid.UUID) ([]service.PatternResponse, error) {
			assert.NotNil(suite.T(), filter)
			assert.Equal(suite.T(), sectionID, *filter)
			return []service.PatternResponse{{ID: uuid.New(), Name: "Weekday Morning"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/patterns?section_id="+sectionID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var patterns []service.PatternResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &patterns))
	assert.Len(suite.T(), patterns, 1)
}

func (suite *PatternHandlerTestSuite) TestListPatterns_BadSectionID() {
	router := suite.newRouter()

	req := httptest.NewRequest(http.MethodGet, "/patterns?section_id=not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PatternHandlerTestSuite) TestGetPattern_NotFound() {
	router := suite.newRouter()
	id := uuid.New()

	suite.mockSvc.EXPECT().
		GetPattern(id).
		Return(nil, apperrors.ErrPatternNotFound)

	req := httptest.NewRequest(http.MethodGet, "/patterns/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PatternHandlerTestSuite) TestGetPatternSchedule_Success() {
	router := suite.newRouter()
	id := uuid.New()

	suite.mockSvc.EXPECT().
		GetPatternSchedule(id).
		Return(&service.PatternScheduleResponse{
			ID:          id,
			Name:        "Weekday Mornings",
			PatternType: models.PatternTypeFixed,
			Schedule: map[string]service.PatternDaySchedule{
				"Monday": {ShiftName: "MORNING", StartTime: "07:00", EndTime: "15:00"},
				"Sunday": {OffDay: true},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/patterns/"+id.String()+"/schedule", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp service.PatternScheduleResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Weekday Mornings", resp.Name)
	assert.Equal(suite.T(), "MORNING", resp.Schedule["Monday"].ShiftName)
	assert.True(suite.T(), resp.Schedule["Sunday"].OffDay)
}

func (suite *PatternHandlerTestSuite) TestUpdatePatternDay_Success() {
	router := suite.newRouter()
	id := uuid.New()

	suite.mockSvc.EXPECT().
		UpdatePatternDay(suite.claims, id, gomock.Any()).
		DoAndReturn(func(_ *auth.Claims, _ uuid.UUID, req *service.UpdatePatternDayRequest) error {
			assert.Equal(suite.T(), 2, req.DayOfWeek)
			assert.True(suite.T(), req.OffDay)
			return nil
		})

	body := `{"day_of_week":2,"off_day":true}`
	req := httptest.NewRequest(http.MethodPut, "/patterns/"+id.String()+"/days", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *PatternHandlerTestSuite) TestDeletePattern_Forbidden() {
	router := suite.newRouter()
	id := uuid.New()

	suite.mockSvc.EXPECT().
		DeletePattern(suite.claims, id).
		Return(apperrors.ErrSectionMismatch)

	req := httptest.NewRequest(http.MethodDelete, "/patterns/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func TestPatternHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PatternHandlerTestSuite))
}

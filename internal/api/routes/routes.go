package routes

import (
	"shift-roster-backend/internal/api/handlers"
	"shift-roster-backend/internal/api/middleware"
	"shift-roster-backend/internal/auth"
	"shift-roster-backend/internal/config"
	"shift-roster-backend/internal/database/models"
	"shift-roster-backend/internal/repository"
	"shift-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	sectionRepo := repository.NewSectionRepository(db)
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	patternRepo := repository.NewShiftPatternRepository(db)
	assignmentRepo := repository.NewUserShiftAssignmentRepository(db)
	scheduledRepo := repository.NewScheduledShiftRepository(db)
	exceptionRepo := repository.NewShiftExceptionRepository(db)
	daysOffRepo := repository.NewUserDaysOffRepository(db)

	// Initialize services
	shiftService := service.NewShiftService(shiftRepo, validator)
	patternService := service.NewPatternService(patternRepo, sectionRepo, shiftRepo, validator)
	schedulingService := service.NewSchedulingService(
		patternRepo, assignmentRepo, scheduledRepo, exceptionRepo, daysOffRepo,
		userRepo, shiftRepo, validator, cfg.ScheduleHorizonDays)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	patternHandler := handlers.NewPatternHandler(patternService)
	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	privileged := authMiddleware.RequireRole(models.UserRoleAdmin, models.UserRoleManager)
	adminOnly := authMiddleware.RequireRole(models.UserRoleAdmin)

	{
		// Shift catalog routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("", adminOnly, shiftHandler.CreateShift)
		}

		// Pattern routes
		patterns := v1.Group("/patterns")
		{
			patterns.GET("", patternHandler.ListPatterns)
			patterns.GET("/:id", patternHandler.GetPattern)
			patterns.GET("/:id/schedule", patternHandler.GetPatternSchedule)
			patterns.POST("", privileged, patternHandler.CreatePattern)
			patterns.PUT("/:id/days", privileged, patternHandler.UpdatePatternDay)
			patterns.DELETE("/:id", privileged, patternHandler.DeletePattern)
		}

		// Section routes
		sections := v1.Group("/sections")
		{
			sections.POST("/:id/standard-patterns", privileged, patternHandler.EnsureStandardPatterns)
		}

		// Schedule routes
		schedule := v1.Group("/schedule")
		{
			schedule.POST("/bulk-assign", privileged, schedulingHandler.BulkAssign)
			schedule.POST("/exceptions", privileged, schedulingHandler.SetShiftException)
			schedule.POST("/days-off", schedulingHandler.RegisterDaysOff)
			schedule.POST("/days-off/:id/approve", privileged, schedulingHandler.ApproveDaysOff)
			schedule.GET("/users/:id", schedulingHandler.GetUserSchedule)
			schedule.GET("/users/:id/resolve", schedulingHandler.ResolveDay)
			schedule.GET("/shifts/:id/participants", schedulingHandler.GetShiftParticipants)
		}
	}

	return router
}

package routes

import (
	"time"

	"bicycle-maintenance-backend/internal/api/handlers"
	"bicycle-maintenance-backend/internal/api/middleware"
	"bicycle-maintenance-backend/internal/auth"
	"bicycle-maintenance-backend/internal/config"
	"bicycle-maintenance-backend/internal/repository"
	"bicycle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	bicycleRepo := repository.NewBicycleRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	usageLogRepo := repository.NewUsageLogRepository(db)

	// Initialize services
	tokenService := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute)
	ledger := service.NewUsageLedger(db, usageLogRepo)
	userService := service.NewUserService(userRepo, tokenService, validate)
	bicycleService := service.NewBicycleService(bicycleRepo, serviceRepo, ledger, validate)
	componentService := service.NewComponentService(db, componentRepo, bicycleRepo, ledger, validate)
	maintenanceService := service.NewMaintenanceService(db, bicycleRepo, componentRepo, serviceRepo, ledger)
	rideService := service.NewRideService(db, bicycleRepo, componentRepo, ledger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	bicycleHandler := handlers.NewBicycleHandler(bicycleService, maintenanceService, rideService)
	componentHandler := handlers.NewComponentHandler(bicycleService, componentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Public auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
	}

	// API routes requiring authentication
	api := router.Group("/api/v1")
	api.Use(auth.Middleware(tokenService))
	{
		api.GET("/me", userHandler.Me)

		bicycles := api.Group("/bicycles")
		{
			bicycles.POST("", bicycleHandler.Create)
			bicycles.GET("", bicycleHandler.List)
			bicycles.GET("/:bicycle_id", bicycleHandler.Get)
			bicycles.PATCH("/:bicycle_id", bicycleHandler.Update)
			bicycles.DELETE("/:bicycle_id", bicycleHandler.Delete)

			bicycles.POST("/:bicycle_id/record_ride", bicycleHandler.RecordRide)
			bicycles.POST("/:bicycle_id/record_maintenance", bicycleHandler.RecordMaintenance)

			bicycles.GET("/:bicycle_id/wear_limits", bicycleHandler.WearLimits)
			bicycles.GET("/:bicycle_id/recommendations", bicycleHandler.Recommendations)
			bicycles.GET("/:bicycle_id/component_status", bicycleHandler.ComponentStatus)
			bicycles.GET("/:bicycle_id/maintenance_history", bicycleHandler.MaintenanceHistory)
			bicycles.GET("/:bicycle_id/services", bicycleHandler.ServiceHistory)
			bicycles.GET("/:bicycle_id/replacements/:component_type", bicycleHandler.ReplacementHistory)

			bicycles.POST("/:bicycle_id/components", componentHandler.Create)
			bicycles.GET("/:bicycle_id/components", componentHandler.List)
			bicycles.GET("/:bicycle_id/components/:component_id", componentHandler.Get)
			bicycles.PATCH("/:bicycle_id/components/:component_id", componentHandler.Update)
			bicycles.DELETE("/:bicycle_id/components/:component_id", componentHandler.Delete)
		}
	}

	return router
}

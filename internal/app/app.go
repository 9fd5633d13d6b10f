package app

import (
	"database/sql"
	"errors"
	"fmt"

	"jobmatch_backend/database"
	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/handlers"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/middleware"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/routes"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	verifier := auth.NewVerifier(cfg.Auth.Verifier)
	if cfg.Auth.Verifier == "plaintext" {
		logger.Warn("Plaintext credential verifier enabled. This stores passwords in clear text and exists only for legacy data parity.")
	}

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	resumeRepo := repositories.NewResumeRepository()
	applicationRepo := repositories.NewApplicationRepository()
	analyticsRepo := repositories.NewAnalyticsRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, verifier),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo),
		ResumeService:      services.NewResumeService(resumeRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, resumeRepo, userRepo),
		AnalyticsService:   services.NewAnalyticsService(userRepo, jobRepo, applicationRepo, analyticsRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ResumeHandler:      handlers.NewResumeHandler(baseHandler, container.ResumeService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(baseHandler, container.AnalyticsService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin gets-or-creates the bootstrap admin, matched by the
// reserved email from config. Regular registration can never produce an
// admin, so this is the only way an admin account comes into existence.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminPassword == "" {
		logger.Warn("FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)
		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found with reserved email. Creating first admin...", "email", adminEmail)

		verifier := auth.NewVerifier(cfg.Auth.Verifier)
		stored, err := verifier.Store(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to store admin credential: %w", err)
		}

		newAdmin := &models.User{
			Name:       cfg.FirstAdminName,
			Email:      adminEmail,
			Credential: stored,
			Role:       models.UserRoleAdmin,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("Successfully created first admin user", "email", adminEmail)
		return nil
	})
}

package app

import (
	"errors"
	"fmt"

	"monprof_backend/database"
	"monprof_backend/internal/config"
	"monprof_backend/internal/email"
	"monprof_backend/internal/handlers"
	"monprof_backend/internal/logger"
	"monprof_backend/internal/middleware"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/routes"
	"monprof_backend/internal/services"
	"monprof_backend/internal/storage"
	"monprof_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
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
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedReferenceData(gormDB); err != nil {
		logger.Fatal("Reference data seeding failed", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, gormDB, storageInstance)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPUsername != "" {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
	} else {
		logger.Warn("SMTP is not configured, outgoing email is disabled")
		emailProvider = &NoopEmailProvider{}
	}
	templates := email.NewTemplateManager()

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)
	unlockRepo := repositories.NewUnlockRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	messagingRepo := repositories.NewMessagingRepository(gormDB)
	geoRepo := repositories.NewGeoRepository(gormDB)
	blogRepo := repositories.NewBlogRepository(gormDB)
	educationRepo := repositories.NewEducationRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo, profileRepo, geoRepo, emailProvider),
		ProfileService:    services.NewProfileService(userRepo, profileRepo, requestRepo, unlockRepo, reviewRepo, messagingRepo),
		ModerationService: services.NewModerationService(profileRepo, userRepo, emailProvider, templates),
		RequestService:    services.NewRequestService(requestRepo, userRepo),
		BillingService:    services.NewBillingService(unlockRepo, profileRepo),
		ReviewService:     services.NewReviewService(reviewRepo, unlockRepo, profileRepo),
		MessagingService:  services.NewMessagingService(messagingRepo, userRepo, profileRepo),
		BlogService:       services.NewBlogService(blogRepo),
		AdminService:      services.NewAdminService(userRepo, profileRepo, requestRepo, unlockRepo, blogRepo, geoRepo, educationRepo),
		EmailProvider:     emailProvider,
		Storage:           storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer, gormDB *gorm.DB, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	userRepo := repositories.NewUserRepository(gormDB)
	geoRepo := repositories.NewGeoRepository(gormDB)
	educationRepo := repositories.NewEducationRepository(gormDB)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, container.ProfileService, storageInstance),
		TutorHandler:     handlers.NewTutorHandler(baseHandler, container.ProfileService, container.ReviewService, userRepo),
		RequestHandler:   handlers.NewRequestHandler(baseHandler, container.RequestService),
		BillingHandler:   handlers.NewBillingHandler(baseHandler, container.BillingService),
		MessagingHandler: handlers.NewMessagingHandler(baseHandler, container.MessagingService),
		BlogHandler:      handlers.NewBlogHandler(baseHandler, container.BlogService),
		AdminHandler:     handlers.NewAdminHandler(baseHandler, container.AdminService, container.ModerationService, container.BlogService, container.ReviewService),
		CatalogHandler:   handlers.NewCatalogHandler(baseHandler, geoRepo, educationRepo),
		FileHandler:      handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin creates the initial superuser account when the
// configured email does not exist yet.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin email or password not set, skipping admin seeding")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		IsSuperuser:  true,
		IsActive:     true,
		FirstName:    "Admin",
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}

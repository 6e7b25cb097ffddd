package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smmehub_backend/database"
	"smmehub_backend/internal/ai"
	"smmehub_backend/internal/config"
	"smmehub_backend/internal/handlers"
	"smmehub_backend/internal/logger"
	"smmehub_backend/internal/metrics"
	"smmehub_backend/internal/middleware"
	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/internal/routes"
	"smmehub_backend/internal/services"
	"smmehub_backend/internal/validator"
	"smmehub_backend/internal/workers"
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
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB)

	ctx := context.Background()
	if err := serviceContainer.VoucherService.SeedInitial(ctx); err != nil {
		logger.Fatal("Failed to seed initial vouchers", "error", err)
	}

	profileRepo := repositories.NewProfileRepository(gormDB)
	workers.NewSubscriptionWorker(profileRepo).Start(ctx)

	ginRouter := SetupRouter(serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	voucherRepo := repositories.NewVoucherRepository(gormDB)
	tenderRepo := repositories.NewTenderRepository(gormDB)
	bidRepo := repositories.NewBidRepository(gormDB)
	websiteRepo := repositories.NewWebsiteRepository(gormDB)
	socialRepo := repositories.NewSocialPostRepository(gormDB)
	invoiceRepo := repositories.NewInvoiceRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(gormDB)

	var provider ai.Provider
	if cfg.AI.APIKey != "" {
		provider = ai.NewOpenAIProvider(ai.Config{
			BaseURL:        cfg.AI.BaseURL,
			APIKey:         cfg.AI.APIKey,
			Model:          cfg.AI.Model,
			TimeoutSeconds: cfg.AI.TimeoutSeconds,
		})
	} else {
		logger.Warn("AI API key is not set. Content generation uses the local fallback only.")
	}

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo),
		ProfileService:   services.NewProfileService(profileRepo),
		VoucherService:   services.NewVoucherService(voucherRepo, profileRepo),
		TenderService:    services.NewTenderService(tenderRepo, bidRepo, profileRepo),
		WebsiteService:   services.NewWebsiteService(websiteRepo, profileRepo, provider),
		SocialService:    services.NewSocialService(socialRepo, profileRepo, provider),
		InvoiceService:   services.NewInvoiceService(invoiceRepo, profileRepo),
		AnalyticsService: services.NewAnalyticsService(analyticsRepo),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		ProfileHandler:   handlers.NewProfileHandler(baseHandler, serviceContainer.ProfileService),
		VoucherHandler:   handlers.NewVoucherHandler(baseHandler, serviceContainer.VoucherService),
		TenderHandler:    handlers.NewTenderHandler(baseHandler, serviceContainer.TenderService),
		WebsiteHandler:   handlers.NewWebsiteHandler(baseHandler, serviceContainer.WebsiteService),
		SocialHandler:    handlers.NewSocialHandler(baseHandler, serviceContainer.SocialService),
		InvoiceHandler:   handlers.NewInvoiceHandler(baseHandler, serviceContainer.InvoiceService),
		AnalyticsHandler: handlers.NewAnalyticsHandler(baseHandler, serviceContainer.AnalyticsService),
	}
}

func initializeGinRouter() *gin.Engine {
	httpMetrics := metrics.NewHTTPMetrics("smmehub")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(httpMetrics.Middleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return tx.Commit().Error
}

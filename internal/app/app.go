package app

import (
	"context"
	"errors"
	"fmt"

	"subtrack_backend/database"
	"subtrack_backend/internal/billing"
	"subtrack_backend/internal/config"
	"subtrack_backend/internal/email"
	"subtrack_backend/internal/handlers"
	"subtrack_backend/internal/logger"
	"subtrack_backend/internal/middleware"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/internal/routes"
	"subtrack_backend/internal/services"
	"subtrack_backend/internal/storage"
	"subtrack_backend/internal/validator"
	"subtrack_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	serviceContainer := NewServiceContainer(cfg)
	ginRouter := SetupRouter(cfg, gormDB, serviceContainer)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	billingWorker := workers.NewBillingWorker(gormDB, serviceContainer.SubscriptionService, cfg.Billing.SweepInterval)
	billingWorker.Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires handlers onto a gin engine. Split from Run so tests can
// build a router against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) *gin.Engine {
	storageInstance := mustStorage(cfg)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func mustStorage(cfg *config.Config) storage.Storage {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)
	return storageInstance
}

// NewServiceContainer builds the full service graph. Exported so tests can
// assemble the same container against their own database handle.
func NewServiceContainer(cfg *config.Config) *services.ServiceContainer {
	emailService := buildEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()
	businessRepo := repositories.NewBusinessRepository()
	serviceRepo := repositories.NewServiceRepository()
	categoryRepo := repositories.NewCategoryRepository()
	cardRepo := repositories.NewCardRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()
	transactionRepo := repositories.NewTransactionRepository()
	voteRepo := repositories.NewVoteRepository()

	engine := billing.NewEngine()
	if cfg.Billing.CycleDays > 0 {
		engine.CycleDays = cfg.Billing.CycleDays
	}
	if cfg.Billing.PendingLead > 0 {
		engine.PendingLead = cfg.Billing.PendingLead
	}

	clock := billing.SystemClock()

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, businessRepo),
		UserService:     services.NewUserService(userRepo),
		BusinessService: services.NewBusinessService(businessRepo),
		CatalogService:  services.NewCatalogService(serviceRepo, categoryRepo),
		CategoryService: services.NewCategoryService(categoryRepo),
		CardService:     services.NewCardService(cardRepo, userRepo),
		SubscriptionService: services.NewSubscriptionService(
			subscriptionRepo,
			transactionRepo,
			userRepo,
			serviceRepo,
			cardRepo,
			engine,
			clock,
			emailService,
		),
		VoteService:  services.NewVoteService(voteRepo, serviceRepo),
		EmailService: emailService,
		Clock:        clock,
	}
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, transactional email disabled")
		return &MockEmailProvider{}
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
	if err := provider.Validate(); err != nil {
		logger.Warn("SMTP configuration invalid, transactional email disabled", "error", err)
		return &MockEmailProvider{}
	}
	return provider
}

func initializeHandlers(serviceContainer *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, serviceContainer.UserService, serviceContainer.CardService, storageInstance),
		BusinessHandler:     handlers.NewBusinessHandler(baseHandler, serviceContainer.BusinessService, storageInstance),
		ServiceHandler:      handlers.NewServiceHandler(baseHandler, serviceContainer.CatalogService, serviceContainer.VoteService, storageInstance),
		CategoryHandler:     handlers.NewCategoryHandler(baseHandler, serviceContainer.CategoryService, storageInstance),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, serviceContainer.SubscriptionService, serviceContainer.Clock),
		TransactionHandler:  handlers.NewTransactionHandler(baseHandler, serviceContainer.SubscriptionService),
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

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found, creating first admin", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}

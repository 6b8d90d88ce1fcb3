package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"snapaml.backend/internal/config"
	"snapaml.backend/internal/infrastructure/repositories"
	"snapaml.backend/internal/infrastructure/storage"
	"snapaml.backend/internal/interfaces/http/handlers"
	"snapaml.backend/internal/interfaces/http/middleware"
	"snapaml.backend/internal/usecases"
	"snapaml.backend/pkg/jwt"
	"snapaml.backend/pkg/logger"
	"snapaml.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	emailVerifRepo := repositories.NewEmailVerificationRepository(db)
	companyRepo := repositories.NewCompanySubmissionRepository(db)
	individualRepo := repositories.NewIndividualSubmissionRepository(db)
	requestRepo := repositories.NewVerificationRequestRepository(db)
	relationshipRepo := repositories.NewApprovedRelationshipRepository(db)
	riskRepo := repositories.NewRiskProfileRepository(db)

	sessionStore, err := redis.NewSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, emailVerifRepo, jwtService)
	submissionUsecase := usecases.NewSubmissionUsecase(companyRepo, individualRepo, userRepo)
	requestUsecase := usecases.NewRequestUsecase(requestRepo, relationshipRepo, companyRepo, riskRepo)
	verificationUsecase := usecases.NewVerificationUsecase(companyRepo)
	profileUsecase := usecases.NewProfileUsecase(companyRepo)

	// Document storage is optional; without a bucket the upload route is
	// not registered.
	var documentHandler *handlers.DocumentHandler
	if cfg.Storage.GCSBucket != "" {
		docStore, err := storage.NewGCSDocumentStore(context.Background(), cfg.Storage.GCSBucket, cfg.Storage.CredentialsJSON)
		if err != nil {
			return fmt.Errorf("failed to initialize document store: %w", err)
		}
		defer docStore.Close()
		documentUsecase := usecases.NewDocumentUsecase(docStore, individualRepo, cfg.Storage.MaxUploadBytes)
		documentHandler = handlers.NewDocumentHandler(documentUsecase, cfg.Storage.MaxUploadBytes)
	} else {
		log.Println("⚠️ GCS_BUCKET not set, document uploads disabled")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	wizardHandler := handlers.NewWizardHandler(submissionUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	requestHandler := handlers.NewRequestHandler(requestUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		wizardHandler:       wizardHandler,
		profileHandler:      profileHandler,
		requestHandler:      requestHandler,
		verificationHandler: verificationHandler,
		documentHandler:     documentHandler,
		authMiddleware:      authMiddleware,
	})

	log.Printf("🚀 SnapAML Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

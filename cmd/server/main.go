package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society-admin-svc/docs"
	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/config"
	"society-admin-svc/internal/database"
	"society-admin-svc/internal/handler"
	"society-admin-svc/internal/middleware"
	"society-admin-svc/internal/repository"
	"society-admin-svc/internal/scheduler"
	"society-admin-svc/internal/service"
	"society-admin-svc/internal/session"
	"society-admin-svc/pkg/logger"
)

// @title Society Admin Service API
// @version 1.0
// @description Backend for the society administration panel

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Society Admin Service API"
	docs.SwaggerInfo.Description = "Backend for the society administration panel"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Society Admin Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database when sessions are kept in postgres
	var db *database.Database
	if cfg.NeedsDatabase() {
		db, err = database.NewDatabase(&cfg.Database)
		if err != nil {
			appLogger.WithField("error", err).Fatal("Failed to connect to database")
		}
		appLogger.Info("Database connected successfully")

		if err := db.AutoMigrate(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to run database migrations")
		}
		appLogger.Info("Database migrations completed successfully")
	}

	// Initialize session store
	var gormDB *gorm.DB
	if db != nil {
		gormDB = db.DB
	}
	store, closeStore, err := session.Open(cfg, gormDB)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to open session store")
	}
	appLogger.WithField("driver", cfg.Session.Driver).Info("Session store ready")

	// Initialize API client
	client := apiclient.New(
		apiclient.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout},
		apiclient.WithLogger(appLogger),
	)

	// Initialize repositories
	authRepo := repository.NewAuthRepository(client)
	societyRepo := repository.NewSocietyRepository(client)
	noticeRepo := repository.NewNoticeRepository(client)
	amenityRepo := repository.NewAmenityRepository(client)
	complaintRepo := repository.NewComplaintRepository(client)
	paymentRepo := repository.NewPaymentRepository(client)
	userRepo := repository.NewUserRepository(client)

	// Initialize services
	services := handler.Services{
		Auth:      service.NewAuthService(authRepo, cfg.Session.TTL, appLogger),
		Dashboard: service.NewDashboardService(societyRepo, noticeRepo, amenityRepo, complaintRepo, paymentRepo, appLogger),
		Society:   service.NewSocietyService(societyRepo, appLogger),
		Notice:    service.NewNoticeService(noticeRepo, appLogger),
		Amenity:   service.NewAmenityService(amenityRepo, appLogger),
		Complaint: service.NewComplaintService(complaintRepo, appLogger),
		Payment:   service.NewPaymentService(paymentRepo, appLogger),
		User:      service.NewUserService(userRepo, appLogger),
	}

	// Initialize scheduler
	var logRepo repository.SchedulerLogRepository
	if db != nil {
		logRepo = repository.NewSchedulerLogRepository(db.DB)
	}
	sessionScheduler := scheduler.NewSessionScheduler(store, logRepo, appLogger, cfg.Scheduler.SessionPurgeCronExpression)
	if err := sessionScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start session scheduler")
	}
	services.Scheduler = sessionScheduler

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.Origins()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	sessions := middleware.NewSessions(store, cfg.Session, appLogger)
	handler.SetupRoutes(router, services, sessions, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop scheduler
	sessionScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Error("Server forced to shutdown")
	}

	if err := closeStore(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close session store")
	}

	// Close database connection
	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.WithField("error", err).Error("Failed to close database connection")
		}
	}

	appLogger.Info("Server exited successfully")
}

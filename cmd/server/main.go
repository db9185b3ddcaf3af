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

	"menu-cms-svc/docs"
	"menu-cms-svc/internal/config"
	"menu-cms-svc/internal/database"
	"menu-cms-svc/internal/handler"
	"menu-cms-svc/internal/middleware"
	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/internal/scheduler"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
	"menu-cms-svc/internal/upload"
	"menu-cms-svc/pkg/logger"
)

// @title Menu CMS API
// @version 1.0
// @description Restaurant menu CMS: public menu page and admin back office

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.File)
	appLogger.Info("Starting Menu CMS...")
	for _, key := range cfg.InsecureDefaults() {
		appLogger.WithField("key", key).Warn("Using the built-in development default, set it before deploying")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	appLogger.WithField("driver", cfg.Database.Driver).Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)
	dishRepo := repository.NewDishRepository(db.DB)
	settingsRepo := repository.NewSettingsRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)

	store := upload.NewStore(cfg.Upload.Dir, appLogger)

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, settingsService, appLogger)
	services := handler.Services{
		Menu:      service.NewMenuService(menuRepo, store, appLogger),
		Category:  service.NewCategoryService(categoryRepo, appLogger),
		Dish:      service.NewDishService(dishRepo, store, appLogger),
		Settings:  settingsService,
		Dashboard: dashboardService,
		Catalog:   service.NewCatalogService(menuRepo, categoryRepo, dishRepo, settingsService, appLogger),
		Auth:      service.NewAuthService(cfg.Auth.AdminPassword, appLogger),
	}

	if _, err := settingsService.EnsureSettings(); err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize settings")
	}

	// Initialize Gin router
	router := gin.New()

	renderer := render.New(cfg.Server.RenderFormat)
	if cfg.Server.RenderFormat == "html" {
		templates, err := render.Templates(cfg.Server.TemplatesGlob)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to load page templates")
		}
		router.SetHTMLTemplate(templates)
	}

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.Origins()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	sessions := session.NewManager(cfg.Auth.SecretKey, cfg.Auth.CookieName, cfg.Auth.SessionTTL, cfg.Auth.CookieSecure)
	handler.SetupRoutes(router, services, sessions, renderer, cfg.Upload.Dir, appLogger)

	// Start the orphan upload sweeper when scheduled
	var sweeper *scheduler.UploadSweeper
	if cfg.Upload.SweepCron != "" {
		sweepLogRepo := repository.NewSweepLogRepository(db.DB)
		sweeper = scheduler.NewUploadSweeper(dashboardService, store, sweepLogRepo, appLogger, cfg.Upload.SweepCron, cfg.Upload.SweepGrace)
		if err := sweeper.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start upload sweeper")
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if sweeper != nil {
		sweeper.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithError(err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}

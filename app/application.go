package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"storeapi.app/api"
	"storeapi.app/config"
	"storeapi.app/database"
	"storeapi.app/providers"
	"storeapi.app/providers/cache"
	"storeapi.app/repository"
	"storeapi.app/scheduler"
	"storeapi.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	db        *gorm.DB
	server    *api.Server
	scheduler *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	slog.Info("Database initialized successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	catalogCache, err := cache.NewCatalogCacheFromConfig(&app.config.Cache)
	if err != nil {
		return fmt.Errorf("create catalog cache: %w", err)
	}

	emailProvider := providers.NewSMTPEmailProvider(&app.config.Email)
	emailService := service.NewEmailService(emailProvider)

	geoRepo := repository.NewGeoRepository(app.db)
	timingRepo := repository.NewStoreTimingRepository(app.db)
	otpRepo := repository.NewOTPRepository(app.db)
	ratingRepo := repository.NewRatingRepository(app.db)

	catalogService := service.NewCatalogService(
		geoRepo,
		timingRepo,
		catalogCache,
		time.Duration(app.config.Cache.TTLMinutes)*time.Minute,
	)
	otpService := service.NewOTPService(otpRepo, ratingRepo, emailService, &app.config.OTP)
	ratingService := service.NewRatingService(ratingRepo, otpRepo)

	server, err := api.NewServer(api.ServerOptions{
		DB:             app.db,
		Config:         app.config,
		CatalogService: catalogService,
		OTPService:     otpService,
		RatingService:  ratingService,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	app.server = server
	app.scheduler = scheduler.NewScheduler(app.db, app.config)

	slog.Info("Services initialized successfully")
	return nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	slog.Info("Starting scheduler...")
	app.scheduler.Start()

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-agent-webhook/config"
	deliveryHttp "medical-agent-webhook/internal/delivery/http"
	"medical-agent-webhook/internal/delivery/http/handler"
	"medical-agent-webhook/internal/delivery/http/middleware"
	domainRepo "medical-agent-webhook/internal/domain/repository"
	"medical-agent-webhook/internal/infrastructure/cache"
	"medical-agent-webhook/internal/infrastructure/database"
	"medical-agent-webhook/internal/repository"
	"medical-agent-webhook/internal/usecase"
	"medical-agent-webhook/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize directory store
	if cfg.Directory.Driver == config.DirectoryDriverPostgres {
		if cfg.DB.MigrateOnStart {
			if err := database.RunMigrations(cfg.DB); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")
	}

	// Initialize Redis
	if cfg.Redis.Enabled && cfg.Directory.CacheTTL > 0 {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	}

	// Initialize all layers
	server, err := initializeServer(cfg, app.DB, app.RedisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initializeDirectory picks the directory backend and wraps it with the cache
func initializeDirectory(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (domainRepo.DoctorRepository, error) {
	var doctorRepo domainRepo.DoctorRepository

	switch cfg.Directory.Driver {
	case config.DirectoryDriverMemory:
		repo, err := repository.LoadMemoryDoctorRepository(cfg.Directory.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load memory directory: %w", err)
		}
		doctorRepo = repo
		log.Infof("Using in-memory doctor directory from %s", cfg.Directory.SeedFile)
	default:
		doctorRepo = repository.NewDoctorRepository(db, log, cfg.Directory.Table)
		log.Infof("Using PostgreSQL doctor directory table %s", cfg.Directory.Table)
	}

	if redisClient != nil {
		doctorRepo = repository.NewCachedDoctorRepository(doctorRepo, redisClient, log, cfg.Directory.CacheTTL)
		log.Infof("Directory cache enabled with TTL %s", cfg.Directory.CacheTTL)
	}

	return doctorRepo, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo, err := initializeDirectory(cfg, db, redisClient, log)
	if err != nil {
		return nil, err
	}

	// Initialize usecases
	availabilityUsecase := usecase.NewDoctorAvailabilityUsecase(log, doctorRepo, customValidator, time.Now)
	fulfillmentUsecase := usecase.NewFulfillmentUsecase(log, cfg.Webhook, availabilityUsecase)

	// Initialize handlers
	webhookHandler := handler.NewWebhookHandler(fulfillmentUsecase, log)
	healthHandler := handler.NewHealthHandler(directoryPinger(db), cachePinger(redisClient), cfg.App.Env, cfg.App.Version)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(webhookHandler, healthHandler, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func directoryPinger(db *gorm.DB) handler.Pinger {
	if db == nil {
		return nil
	}
	return handler.PingerFunc(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
}

func cachePinger(redisClient *redis.Client) handler.Pinger {
	if redisClient == nil {
		return nil
	}
	return handler.PingerFunc(func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			logrus.Warnf("Failed to close database: %v", err)
		}
	}

	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			logrus.Warnf("Failed to close Redis: %v", err)
		}
	}
}

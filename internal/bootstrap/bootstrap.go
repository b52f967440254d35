// Package bootstrap wires configuration, storage, services and the HTTP
// router together for the API process.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/ogulcan/coursepilot/docs" // swagger docs
	"github.com/ogulcan/coursepilot/internal/app/catalog"
	appControllers "github.com/ogulcan/coursepilot/internal/app/controllers"
	appMigrations "github.com/ogulcan/coursepilot/internal/app/migrations"
	appRepos "github.com/ogulcan/coursepilot/internal/app/repositories"
	appRoutes "github.com/ogulcan/coursepilot/internal/app/routes"
	appServices "github.com/ogulcan/coursepilot/internal/app/services"
	"github.com/ogulcan/coursepilot/internal/config"
	"github.com/ogulcan/coursepilot/internal/db"
	appMiddleware "github.com/ogulcan/coursepilot/internal/middleware"
	"github.com/ogulcan/coursepilot/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogStore       *catalog.Store
	SessionStore       appRepos.SessionStore
	ScheduleService    appServices.ScheduleService
	CatalogService     appServices.CatalogService
	SessionService     appServices.SessionService
	ScheduleController *appControllers.ScheduleController
	CatalogController  *appControllers.CatalogController
	SessionController  *appControllers.SessionController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
// Only called when the postgres sessions driver is configured.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := appMigrations.NewMigrator(dbPool).RunAll(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies constructs the service graph. dbPool may be nil when
// the memory sessions driver is in use.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	var sessions appRepos.SessionStore
	switch cfg.Sessions.Driver {
	case "postgres":
		if dbPool == nil {
			return nil, fmt.Errorf("postgres sessions driver requires a database connection")
		}
		sessions = appRepos.NewPostgresSessionStore(dbPool)
	default:
		sessions = appRepos.NewMemorySessionStore()
	}

	store := catalog.NewStore()
	if cfg.Catalog.LoadOnStart {
		// A broken catalog file keeps the process up; requests answer 503
		// until a refresh succeeds.
		built, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			lgr.Warn().Err(err).Str("path", cfg.Catalog.Path).Msg("Initial catalog load failed")
		} else {
			store.Swap(built)
			lgr.Info().Int("courses", built.Size()).Str("path", cfg.Catalog.Path).Msg("Catalog loaded")
		}
	}

	scheduleService := appServices.NewScheduleService(store, sessions,
		cfg.Assembler.MaxComparisons, cfg.Assembler.MaxCredits)
	catalogService := appServices.NewCatalogService(store, sessions, cfg.Catalog.Path)
	sessionService := appServices.NewSessionService(sessions)

	return &Dependencies{
		CatalogStore:       store,
		SessionStore:       sessions,
		ScheduleService:    scheduleService,
		CatalogService:     catalogService,
		SessionService:     sessionService,
		ScheduleController: appControllers.NewScheduleController(scheduleService),
		CatalogController:  appControllers.NewCatalogController(catalogService),
		SessionController:  appControllers.NewSessionController(sessionService),
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Recovery())

	appRoutes.SetupRouter(router,
		deps.ScheduleController,
		deps.CatalogController,
		deps.SessionController,
	)

	lgr.Info().Msg("Router configured")
	return router
}

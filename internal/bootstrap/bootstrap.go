package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/eamcet-predictor/internal/app/controllers"
	appMigrations "github.com/yigit/eamcet-predictor/internal/app/migrations"
	appRepos "github.com/yigit/eamcet-predictor/internal/app/repositories"
	appRoutes "github.com/yigit/eamcet-predictor/internal/app/routes"
	appServices "github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/config"
	"github.com/yigit/eamcet-predictor/internal/db"
	appMiddleware "github.com/yigit/eamcet-predictor/internal/middleware"
	"github.com/yigit/eamcet-predictor/internal/pkg/cache"
	"github.com/yigit/eamcet-predictor/internal/pkg/helpers"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
	"github.com/yigit/eamcet-predictor/internal/seed"
)

// DriverMemory keeps the reference table in process, loaded from the seed file
const DriverMemory = "memory"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services
	// nil for the memory driver
	Database db.Database
	Cache    cache.Cache
	// set only when the cache is backed by Redis
	Redis *cache.RedisCache

	Controllers *appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
// It returns a nil database for the memory driver.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (db.Database, error) {
	if strings.ToLower(cfg.Database.Driver) == DriverMemory {
		lgr.Info().Msg("Using in-memory college store")
		return nil, nil
	}

	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := cfg.Data.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// SetupCache connects to Redis when enabled and falls back to an in-process cache otherwise
func SetupCache(cfg *config.Config, lgr zerolog.Logger) (cache.Cache, *cache.RedisCache) {
	if !cfg.Cache.Enabled {
		lgr.Info().Msg("Using in-memory analytics cache")
		return cache.NewMemoryCache(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisCache, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Cache.Addr).Msg("Redis unavailable, falling back to in-memory cache")
		return cache.NewMemoryCache(), nil
	}
	lgr.Info().Str("addr", cfg.Cache.Addr).Msg("Redis cache connected")
	return redisCache, redisCache
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database db.Database, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Database: database}

	if database == nil {
		deps.Repos = appRepos.NewMemoryRepositories()
	} else {
		deps.Repos = appRepos.NewRepositories(database)
	}

	deps.Cache, deps.Redis = SetupCache(cfg, lgr)

	settings := appServices.Settings{
		MaxResults:          cfg.Predictor.MaxResults,
		RecommendationLimit: cfg.Predictor.RecommendationLimit,
		SimilarLimit:        cfg.Predictor.SimilarLimit,
		RankingLimit:        cfg.Predictor.RankingLimit,
		CacheTTL:            helpers.ParseDuration(cfg.Cache.TTL, 10*time.Minute),
	}

	analytics := appServices.NewAnalyticsService(deps.Repos.CollegeRepository, deps.Cache, settings)
	deps.Services = appServices.NewServices(deps.Repos, analytics, settings)

	// Load reference data (after services so stale aggregates get dropped)
	if _, err := seed.CreateDefaultData(context.Background(), deps.Repos.CollegeRepository, cfg.Data.SeedFile, analytics, lgr); err != nil {
		if database == nil {
			// the memory store has no other source of rows
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	// nil Pinger reports healthy for the memory driver
	var pinger appControllers.Pinger
	if database != nil {
		pinger = database
	}

	deps.Controllers = &appRoutes.Controllers{
		Predictor:  appControllers.NewPredictorController(deps.Services.Predictor),
		Calculator: appControllers.NewCalculatorController(deps.Services.Calculator),
		College:    appControllers.NewCollegeController(deps.Services.College),
		Analytics:  appControllers.NewAnalyticsController(deps.Services.Analytics),
		Health:     appControllers.NewHealthController(pinger),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}

// Close releases the database and cache connections
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Error closing redis client")
		}
	}
	if d.Database != nil {
		d.Database.Close()
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/clubhub/internal/app/controllers"
	appMigrations "github.com/yigit/clubhub/internal/app/migrations"
	appRepos "github.com/yigit/clubhub/internal/app/repositories"
	appRoutes "github.com/yigit/clubhub/internal/app/routes"
	appServices "github.com/yigit/clubhub/internal/app/services"
	"github.com/yigit/clubhub/internal/config"
	"github.com/yigit/clubhub/internal/db"
	appMiddleware "github.com/yigit/clubhub/internal/middleware"
	pkgAuth "github.com/yigit/clubhub/internal/pkg/auth"
	"github.com/yigit/clubhub/internal/pkg/helpers"
	"github.com/yigit/clubhub/internal/pkg/logger"
	"github.com/yigit/clubhub/internal/pkg/session"
	"github.com/yigit/clubhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Transactor     db.Transactor
	JWTService     *pkgAuth.JWTService
	Hasher         *pkgAuth.PasswordHasher
	Revoker        session.Revoker
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  level,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection pool.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies every pending migration from the configured directory.
func RunMigrations(ctx context.Context, cfg *config.Config, pool db.Pool, lgr zerolog.Logger) error {
	lgr.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupRedis connects the session revocation store. With redis disabled the
// client is nil and revocation is a no-op.
func SetupRedis(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*redis.Client, session.Revoker, error) {
	if !cfg.Redis.Enabled {
		lgr.Warn().Msg("Redis disabled, issued tokens cannot be revoked")
		return nil, session.NoopStore{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	store := session.NewRedisStore(client, tokenExpiry(cfg))

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		_ = client.Close()
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return client, store, nil
}

func tokenExpiry(cfg *config.Config) time.Duration {
	return helpers.ParseDuration(cfg.JWT.TokenExpiration, pkgAuth.DefaultTokenExpiry)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool db.Pool, revoker session.Revoker, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:      appRepos.NewRepositories(pool),
		Transactor: db.NewTransactor(pool),
		Revoker:    revoker,
		Logger:     lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: tokenExpiry(cfg),
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.Hasher = pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Users:         deps.Repos.UserRepository,
		AdminRequests: deps.Repos.AdminRequestRepository,
		Clubs:         deps.Repos.ClubRepository,
		Events:        deps.Repos.EventRepository,
		Registrations: deps.Repos.RegistrationRepository,
		Tx:            deps.Transactor,
		Revoker:       revoker,
		Logger:        lgr,
	}, deps.JWTService, deps.Hasher)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, revoker, lgr)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.Services.Auth, lgr),
		AdminRequests: appControllers.NewAdminRequestController(deps.Services.AdminRequests),
		Users:         appControllers.NewUserController(deps.Services.Users),
		Clubs:         appControllers.NewClubController(deps.Services.Clubs),
		Events:        appControllers.NewEventController(deps.Services.Events),
	}

	return deps
}

// SeedMainAdmin creates the configured main admin on an empty installation.
func SeedMainAdmin(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	_, err := seed.CreateMainAdmin(ctx, deps.Transactor, deps.Repos.UserRepository, deps.Hasher, seed.MainAdmin{
		Name:     cfg.Auth.SeedAdminName,
		Email:    cfg.Auth.SeedAdminEmail,
		Password: cfg.Auth.SeedAdminPassword,
	}, deps.Logger)
	return err
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	deps.Logger.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	appMiddleware.ConfigureValidator()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(deps.Logger))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}

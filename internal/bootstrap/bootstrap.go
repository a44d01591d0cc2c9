package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/ahassan/unisync/internal/app/auth"
	appControllers "github.com/ahassan/unisync/internal/app/controllers"
	appMigrations "github.com/ahassan/unisync/internal/app/migrations"
	"github.com/ahassan/unisync/internal/app/notify"
	"github.com/ahassan/unisync/internal/app/reminder"
	appRoutes "github.com/ahassan/unisync/internal/app/routes"
	"github.com/ahassan/unisync/internal/app/store"
	"github.com/ahassan/unisync/internal/app/viewmodels"
	"github.com/ahassan/unisync/internal/config"
	"github.com/ahassan/unisync/internal/db"
	appMiddleware "github.com/ahassan/unisync/internal/middleware"
	pkgAuth "github.com/ahassan/unisync/internal/pkg/auth"
	"github.com/ahassan/unisync/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Session   *appAuth.Session
	Store     store.Store
	Codec     store.Codec
	Sink      *notify.LocalSink
	Scheduler *reminder.Scheduler

	CoursesVM     *viewmodels.CoursesViewModel
	AssignmentsVM *viewmodels.AssignmentsViewModel
	GoalsVM       *viewmodels.StudyGoalsViewModel
	SettingsVM    *viewmodels.SettingsViewModel
	DashboardVM   *viewmodels.DashboardViewModel

	AuthService          *appAuth.Service
	JWTService           *pkgAuth.JWTService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	AssignmentController *appControllers.AssignmentController
	GoalController       *appControllers.GoalController
	SettingsController   *appControllers.SettingsController
	DashboardController  *appControllers.DashboardController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies wires the session, store, scheduler, view-models
// and HTTP layer together.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Session = appAuth.NewSession()
	deps.Store = store.NewPostgresStore(dbPool)
	deps.Codec = store.NewCodec(cfg.Planner.DefaultSemester)

	sink, err := notify.NewLocalSink(cfg.Notifications.SweepSchedule, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notification sink: %w", err)
	}
	deps.Sink = sink
	deps.Scheduler = reminder.NewScheduler(sink)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.TokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	principalRepo := appAuth.NewPrincipalRepository(dbPool)
	deps.AuthService = appAuth.NewService(principalRepo, deps.JWTService, deps.Session, lgr)

	deps.CoursesVM = viewmodels.NewCoursesViewModel(deps.Store, deps.Codec, deps.Session, lgr)
	deps.AssignmentsVM = viewmodels.NewAssignmentsViewModel(deps.Store, deps.Codec, deps.Scheduler, deps.Session, lgr)
	deps.GoalsVM = viewmodels.NewStudyGoalsViewModel(deps.Store, deps.Codec, deps.Session, lgr)
	deps.SettingsVM = viewmodels.NewSettingsViewModel(deps.Store, deps.Codec, deps.Session, lgr)
	deps.DashboardVM = viewmodels.NewDashboardViewModel(deps.Store, deps.Codec, deps.Session, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Session)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CoursesVM)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentsVM)
	deps.GoalController = appControllers.NewGoalController(deps.GoalsVM)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsVM)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardVM)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.AssignmentController,
		deps.GoalController,
		deps.SettingsController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}

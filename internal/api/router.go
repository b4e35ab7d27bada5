package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clockwise/timesheet-api/internal/api/handler"
	"github.com/clockwise/timesheet-api/internal/api/middleware"
	"github.com/clockwise/timesheet-api/internal/core/ports"
	"github.com/clockwise/timesheet-api/internal/core/service"
	"github.com/clockwise/timesheet-api/internal/infrastructure/config"
	mongodb "github.com/clockwise/timesheet-api/internal/infrastructure/db/mongo"
	redisdb "github.com/clockwise/timesheet-api/internal/infrastructure/db/redis"
)

// Deps carries the externally owned resources the router wires together.
// Connections and the audit dispatcher are constructed (and torn down) by
// main; the router builds the services and handlers on top of them.
type Deps struct {
	DB       *mongo.Database
	Redis    *goredis.Client
	Sessions *redisdb.SessionStore
	Audit    ports.ActivityDispatcher
	Activity ports.ActivityRepository
	Cfg      *config.Config
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timesheet"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(d.DB)
	jobRepo := mongodb.NewJobRepository(d.DB)
	entryRepo := mongodb.NewEntryRepository(d.DB)

	authService := service.NewAuthService(userRepo, d.Sessions, d.Cfg.JWTSecret, d.Cfg.SessionTTL, d.Log)
	jobService := service.NewJobService(jobRepo, d.Audit, d.Log)
	entryService := service.NewEntryService(entryRepo, d.Audit, d.Cfg.EntryRestrictToToday, d.Log)
	reportService := service.NewReportService(jobRepo, entryRepo, d.Log)
	activityService := service.NewActivityService(d.Activity)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	entryHandler := handler.NewEntryHandler(entryService)
	reportHandler := handler.NewReportHandler(reportService)
	activityHandler := handler.NewActivityHandler(activityService)

	authMiddleware := middleware.Auth(d.Cfg.JWTSecret, d.Sessions)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Timesheet routes ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/jobs", jobHandler.List)
	v1.POST("/jobs", jobHandler.Create)
	v1.PUT("/jobs/:id", jobHandler.Update)
	v1.DELETE("/jobs/:id", jobHandler.Delete)
	v1.GET("/entries", entryHandler.List)
	v1.POST("/entries", entryHandler.Create)
	v1.PUT("/entries/:id", entryHandler.Update)
	v1.DELETE("/entries/:id", entryHandler.Delete)
	v1.GET("/report", reportHandler.Get)
	v1.GET("/activity", activityHandler.List)

	// --- Ops surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

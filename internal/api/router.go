package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projclock/projclock/internal/api/handler"
	"github.com/projclock/projclock/internal/api/middleware"
	"github.com/projclock/projclock/internal/core/ports"
	"github.com/projclock/projclock/internal/core/service"
	mongodb "github.com/projclock/projclock/internal/infrastructure/db/mongo"
	redisdb "github.com/projclock/projclock/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to wire the handlers.
type Dependencies struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Audit     ports.AuditRecorder
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	denylist := redisdb.NewTokenDenylist(deps.Redis)

	authRepo := mongodb.NewAuthRepository(deps.Mongo)
	projectRepo := mongodb.NewProjectRepository(deps.Mongo)
	activityRepo := mongodb.NewActivityRepository(deps.Mongo)

	authService := service.NewAuthService(authRepo, denylist, deps.JWTSecret, deps.TokenTTL)
	projectService := service.NewProjectService(projectRepo, deps.Audit, deps.Logger)
	activityService := service.NewActivityService(activityRepo, projectRepo, deps.Audit, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	activityHandler := handler.NewActivityHandler(activityService)

	authMiddleware := middleware.Auth(deps.JWTSecret, denylist)
	adminOnly := middleware.RBAC("admin")

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/user", authHandler.CurrentUser)

	v1.POST("/projects", projectHandler.Create, adminOnly)
	v1.GET("/projects", projectHandler.List, adminOnly)
	v1.GET("/projects/me", projectHandler.ListMine)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Update, adminOnly)
	v1.DELETE("/projects/:id", projectHandler.Delete, adminOnly)

	v1.POST("/activities", activityHandler.Create)
	v1.GET("/activities", activityHandler.ListMine)
	v1.PUT("/activities/:id", activityHandler.Update)
	v1.POST("/activities/:id/stop", activityHandler.Stop)
	v1.DELETE("/activities/:id", activityHandler.Delete)

	v1.GET("/projects/:id/time", activityHandler.TotalProjectTime)
	v1.GET("/projects/:id/time/:user_id", activityHandler.IndividualProjectTime)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

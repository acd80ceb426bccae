package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/aihub/usecase-hub/internal/api/handler"
	"github.com/aihub/usecase-hub/internal/api/middleware"
	"github.com/aihub/usecase-hub/internal/core/ports"
	"github.com/aihub/usecase-hub/internal/core/service"
	"github.com/aihub/usecase-hub/internal/infrastructure/db/postgres"
	redisinfra "github.com/aihub/usecase-hub/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the service then runs without the read cache.
func NewRouter(db *gorm.DB, rdb *goredis.Client, tokens ports.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// HTTP metrics get a per-router registry so building a second router (as
	// tests do) never double-registers collectors; /metrics serves both this
	// registry and the default one holding the app counters.
	httpMetrics := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "usecasehub",
		Registerer: httpMetrics,
	}))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	useCaseRepo := postgres.NewUseCaseRepository(db)

	var cache ports.UseCaseCache
	if rdb != nil {
		cache = redisinfra.NewUseCaseCache(rdb)
	}

	authService := service.NewAuthService(userRepo, tokens, log)
	useCaseService := service.NewUseCaseService(useCaseRepo, cache, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	useCaseHandler := handler.NewUseCaseHandler(useCaseService)
	userHandler := handler.NewUserHandler(userService)

	requireAuth := middleware.Auth(tokens, log)
	optionalAuth := middleware.OptionalAuth(tokens, log)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Use case routes ---
	v1 := e.Group("/v1")
	v1.GET("/usecases", useCaseHandler.List, optionalAuth)
	v1.GET("/usecases/:id", useCaseHandler.Get, requireAuth)
	v1.POST("/usecases", useCaseHandler.Create, requireAuth, middleware.RBAC("admin", "editor"))
	v1.PUT("/usecases/:id", useCaseHandler.Update, requireAuth, middleware.RBAC("admin", "editor"))
	v1.DELETE("/usecases/:id", useCaseHandler.Delete, requireAuth, middleware.RBAC("admin"))

	// --- User routes ---
	v1.GET("/me", userHandler.Me, requireAuth)
	v1.GET("/users", userHandler.List, requireAuth, middleware.RBAC("admin"))
	v1.PUT("/users/:id/role", userHandler.ChangeRole, requireAuth, middleware.RBAC("admin"))
	v1.DELETE("/users/:id", userHandler.Delete, requireAuth, middleware.RBAC("admin"))

	// --- Observability + health (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{
			prometheus.DefaultGatherer,
			httpMetrics,
		},
	}))

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/compayre/account-service/internal/api/handler"
	"github.com/compayre/account-service/internal/api/middleware"
	"github.com/compayre/account-service/internal/core/authz"
	"github.com/compayre/account-service/internal/core/ports"
	"github.com/compayre/account-service/internal/core/service"
	"github.com/compayre/account-service/internal/infrastructure/config"
	mongodb "github.com/compayre/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/compayre/account-service/internal/infrastructure/db/redis"
	"github.com/compayre/account-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher ports.NotificationDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	accountCache := redisdb.NewAccountCache(rdb, cfg.Redis.CacheTTL)
	loader := service.NewAccountLoader(userRepo, accountCache, log)

	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, issuer)
	userService := service.NewUserService(userRepo, accountCache, dispatcher)

	authHandler := handler.NewAuthHandler(userService, authService)
	userHandler := handler.NewUserHandler(userService)
	dataHandler := handler.NewDataHandler()

	authenticated := middleware.Auth(cfg.JWTSecret, loader)
	adminOnly := middleware.Require("require_admin", authz.RequireAdmin)

	// --- Auth routes (open) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Account routes ---
	users := e.Group("/users", authenticated)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.PATCH("/:id/subscription", userHandler.SetSubscription, adminOnly)
	users.PATCH("/:id/admin", userHandler.SetAdmin, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Data entitlement probe ---
	e.GET("/data/:category/access", dataHandler.CheckAccess, authenticated)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

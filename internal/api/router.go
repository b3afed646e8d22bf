package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JoanixX/high-concurrency-api/internal/api/handler"
	"github.com/JoanixX/high-concurrency-api/internal/api/middleware"
	"github.com/JoanixX/high-concurrency-api/internal/core/ports"
	"github.com/JoanixX/high-concurrency-api/internal/infrastructure/http/handlers"
)

// RouterDeps carries the wired adapters and services the router needs. All
// wiring happens once in main; the router only registers routes.
type RouterDeps struct {
	AuthService    ports.AuthService
	BettingService ports.BettingService
	Issuer         handler.TokenIssuer
	JWTSecret      string
	Mongo          *mongo.Database
	Cache          handlers.CachePinger
	Logger         zerolog.Logger

	// Metrics overrides the prometheus registerer; nil means the default
	// registry. Tests pass a fresh one so routers can be built repeatedly.
	Metrics prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	registerer := deps.Metrics
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "betting",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Issuer)
	bettingHandler := handler.NewBettingHandler(deps.BettingService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Betting routes (authenticated) ---
	e.POST("/bets", bettingHandler.PlaceBet, authMiddleware)
	e.GET("/bets/:id", bettingHandler.GetBet, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Cache)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health_check", healthHandler.Liveness)      // legacy probe path some gateways still use
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

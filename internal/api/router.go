package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thoughts-cell/Property-Management-System/internal/api/handler"
	"github.com/thoughts-cell/Property-Management-System/internal/api/middleware"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
	"github.com/thoughts-cell/Property-Management-System/internal/core/service"
	"github.com/thoughts-cell/Property-Management-System/internal/core/session"
	mongodb "github.com/thoughts-cell/Property-Management-System/internal/infrastructure/db/mongo"
	"github.com/thoughts-cell/Property-Management-System/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("propertysys"))

	// --- Dependencies ---
	store := session.NewStore(rdb, cfg.SessionTTL)
	sessions := middleware.NewSessionManager(store, cfg.SessionSecret)

	directory := mongodb.NewUserDirectory(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	managerRepo := mongodb.NewManagerRepository(db)
	allocationRepo := mongodb.NewAllocationRepository(db)

	workflow := service.NewWorkflowService(directory, notifier, log)
	properties := service.NewPropertyService(propertyRepo, log)
	managers := service.NewManagerService(managerRepo, allocationRepo, log)
	allocations := service.NewAllocationService(allocationRepo, managerRepo, propertyRepo, log)

	authHandler := handler.NewAuthHandler(workflow, sessions, log)
	pageHandler := handler.NewPageHandler(sessions)
	propertyHandler := handler.NewPropertyHandler(properties)
	managerHandler := handler.NewManagerHandler(managers)
	allocationHandler := handler.NewAllocationHandler(allocations)

	// --- Health probes and metrics (outside the session/gate chain) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Application routes: session first, then the access gate ---
	app := e.Group("", sessions.Middleware(), middleware.Gate(sessions))

	// Pages
	app.GET("/", pageHandler.Index)
	app.GET("/login", pageHandler.Login)
	app.GET("/verification", pageHandler.Verification)
	app.GET("/registration", pageHandler.Registration)
	app.GET("/recovery/email", pageHandler.RecoveryEmail)
	app.GET("/recovery/reset", pageHandler.RecoveryReset)
	app.GET("/home", pageHandler.Home)
	// The gate intercepts /logout before this handler can run; the redirect
	// here is only a fallback.
	app.GET("/logout", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})

	// Workflow operations
	app.POST("/login", authHandler.Login)
	app.POST("/verification", authHandler.StartRegistration)
	app.POST("/registration", authHandler.ConfirmRegistration)
	app.POST("/recovery/email", authHandler.StartRecovery)
	app.POST("/recovery/reset", authHandler.ConfirmRecovery)

	// Property listings
	app.POST("/properties/sales", propertyHandler.CreateSale)
	app.GET("/properties/sales", propertyHandler.ListSales)
	app.POST("/properties/rentals", propertyHandler.CreateRent)
	app.GET("/properties/rentals", propertyHandler.ListRentals)
	app.GET("/properties/:id", propertyHandler.Get)

	// Property managers
	app.POST("/managers", managerHandler.Create)
	app.GET("/managers", managerHandler.List)
	app.GET("/managers/count", managerHandler.Count)
	app.GET("/managers/:id", managerHandler.Get)
	app.PUT("/managers/:id", managerHandler.Update)
	app.DELETE("/managers/:id", managerHandler.Delete)
	app.GET("/managers/:id/stats", managerHandler.Stats)

	// Allocations
	app.POST("/allocations", allocationHandler.Create)
	app.GET("/allocations", allocationHandler.List)
	app.GET("/allocations/count", allocationHandler.Count)
	app.GET("/allocations/:id", allocationHandler.Get)
	app.DELETE("/allocations/:id", allocationHandler.Delete)

	return e
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/docuvault/ingestion-platform/internal/api/handler"
	"github.com/docuvault/ingestion-platform/internal/api/middleware"
	"github.com/docuvault/ingestion-platform/internal/core/domain"
	"github.com/docuvault/ingestion-platform/internal/core/service"
	"github.com/docuvault/ingestion-platform/internal/core/token"
	mongodb "github.com/docuvault/ingestion-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/docuvault/ingestion-platform/internal/infrastructure/db/redis"
	"github.com/docuvault/ingestion-platform/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, ingestionDelay time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("docuvault"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	docRepo := mongodb.NewDocumentRepository(db)
	statusCache := redisdb.NewStatusCache(rdb)

	authService := service.NewAuthService(userRepo, issuer, log)
	userService := service.NewUserService(userRepo, log)
	ingestionService := service.NewIngestionService(jobRepo, statusCache, ingestionDelay, log)
	documentService := service.NewDocumentService(docRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	ingestionHandler := handler.NewIngestionHandler(ingestionService)
	documentHandler := handler.NewDocumentHandler(documentService)

	authRequired := middleware.Auth(issuer)

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User administration (admin only) ---
	users := e.Group("/v1/users", authRequired, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("/role", userHandler.UpdateRole)

	// --- Ingestion ---
	ingestion := e.Group("/v1/ingestion", authRequired)
	ingestion.POST("", ingestionHandler.Trigger, middleware.RBAC(domain.RoleAdmin, domain.RoleEditor))
	ingestion.GET("/status/:id", ingestionHandler.Status, middleware.RBAC(domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer))

	// --- Documents ---
	canEdit := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer)
	docs := e.Group("/v1/documents", authRequired)
	docs.POST("", documentHandler.Create, canEdit)
	docs.GET("", documentHandler.List, anyRole)
	docs.GET("/:id", documentHandler.Get, anyRole)
	docs.PATCH("/:id", documentHandler.Update, canEdit)
	docs.DELETE("/:id", documentHandler.Delete, canEdit)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskdeck/task-api/internal/api/handler"
	"github.com/taskdeck/task-api/internal/api/middleware"
	"github.com/taskdeck/task-api/internal/core/service"
	"github.com/taskdeck/task-api/internal/core/token"
	"github.com/taskdeck/task-api/internal/infrastructure/config"
	mongodb "github.com/taskdeck/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskdeck/task-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskdeck"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	userCache := redisdb.NewUserCache(rdb, userRepo, log)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL())
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler()
	taskHandler := handler.NewTaskHandler(taskService)

	// Identity resolution reads users through the Redis cache; login and
	// registration always hit the store directly.
	authMiddleware := middleware.Auth(tokens, userCache, log)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("/me", userHandler.Me)

	tasks := e.Group("/api/tasks", authMiddleware)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

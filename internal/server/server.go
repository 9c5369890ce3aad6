// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"pulse/internal/cache"
	"pulse/internal/config"
	"pulse/internal/database"
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	shareRepo   repository.ShareRepository

	userService        *service.UserService
	postService        *service.PostService
	interactionService *service.InteractionService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Used by tests and by bootstrap layers that establish DB/Redis themselves.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("pulse-api"),
		userRepo:       repository.NewUserRepository(db),
		postRepo:       repository.NewPostRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		shareRepo:      repository.NewShareRepository(db),
	}
	s.userService = service.NewUserService(s.userRepo)
	s.postService = service.NewPostService(s.postRepo, s.commentRepo)
	s.interactionService = service.NewInteractionService(s.postRepo, s.likeRepo, s.commentRepo, s.shareRepo)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate request ID and user ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// Never rate-limit preflight requests.
			return c.Method() == fiber.MethodOptions || s.config.Env == "test"
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// User routes. Specific paths must be registered before the generic /:id.
	users := api.Group("/users")
	users.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	users.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	users.Post("/refresh", s.Refresh)
	users.Get("/profile", middleware.AuthRequired, s.GetProfile)
	users.Put("/profile", middleware.AuthRequired, s.UpdateProfile)
	users.Get("/", middleware.AuthRequired, s.adminOnly(), s.ListUsers)
	users.Put("/:id", middleware.AuthRequired, s.adminOnly(), s.AdminUpdateUser)

	// Post routes. Reads are public; OptionalAuth resolves the user when a
	// token is present so read logs carry the user ID.
	posts := api.Group("/posts")
	posts.Get("/", middleware.OptionalAuth, s.GetPosts)
	posts.Post("/", middleware.AuthRequired, middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	posts.Get("/:id/comments", middleware.OptionalAuth, s.GetComments)
	posts.Get("/:id", middleware.OptionalAuth, s.GetPost)
	posts.Put("/:id", middleware.AuthRequired, s.UpdatePost)
	posts.Delete("/:id", middleware.AuthRequired, s.DeletePost)

	// Interaction routes
	interactions := api.Group("/interactions", middleware.AuthRequired)
	interactions.Post("/like/:postId", s.LikePost)
	interactions.Post("/comment/:postId", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.CommentOnPost)
	interactions.Post("/share/:postId", middleware.RateLimit(
		s.redis, 10, time.Minute, "share_post"), s.SharePost)
}

// adminOnly builds the admin authorization middleware. Must be placed after
// AuthRequired so that userID is available in locals.
func (s *Server) adminOnly() fiber.Handler {
	return middleware.Authorize(middleware.AdminOnly(s.userService.IsAdmin))
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is optional; the API degrades to uncached operation without it.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Pulse API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.Error("unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}

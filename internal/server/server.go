// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"photofeed/internal/config"
	"photofeed/internal/feedback"
	"photofeed/internal/middleware"
	"photofeed/internal/observability"
	"photofeed/internal/service"
	"photofeed/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	logger         *observability.Logger
	promMiddleware *fiberprometheus.FiberPrometheus
	userStore      store.UserStore
	postStore      store.PostStore
	banner         *feedback.Banner
	authService    *service.AuthService
	userService    *service.UserService
	friendService  *service.FriendService
	postService    *service.PostService
}

// NewServer creates a new server instance with all dependencies.
//
// The stores are constructed here, once, and handed to every consumer by
// reference; nothing reaches them through ambient globals.
func NewServer(cfg *config.Config) *Server {
	logger := observability.NewLogger(cfg.LogLevel)

	userStore := store.NewUserStore(logger)
	postStore := store.NewPostStore(logger)

	server := &Server{
		config:         cfg,
		logger:         logger,
		promMiddleware: fiberprometheus.New("photofeed-api"),
		userStore:      userStore,
		postStore:      postStore,
		banner:         feedback.NewBanner(),
		authService:    service.NewAuthService(userStore),
		userService:    service.NewUserService(userStore, postStore),
		friendService:  service.NewFriendService(userStore),
		postService:    service.NewPostService(postStore, userStore),
	}

	middleware.InitMiddleware(cfg)
	return server
}

// UserStore exposes the user store for bootstrap tasks (seeding).
func (s *Server) UserStore() store.UserStore { return s.userStore }

// PostStore exposes the post store for bootstrap tasks (seeding).
func (s *Server) PostStore() store.PostStore { return s.postStore }

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlation
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	// OpenTelemetry request spans
	app.Use(middleware.TracingMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger(s.logger))

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
			return c.Method() == fiber.MethodOptions
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

// routeLimiter returns a per-route rate limiter keyed by IP and route name.
func routeLimiter(max int, window time.Duration, name string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return name + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	})
}

// SetupRoutes configures all routes for the application.
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

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", routeLimiter(3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", routeLimiter(10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)
	auth.Get("/session", s.GetSession)

	// Public browse routes
	publicPosts := api.Group("/posts")
	publicPosts.Get("/", s.GetPosts)
	publicPosts.Get("/:id/comments", s.GetComments)

	// Feedback banner
	api.Get("/feedback", s.GetFeedback)
	api.Post("/feedback/hide", s.HideFeedback)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	users := protected.Group("/users")
	users.Get("/", s.GetAllUsers)
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Delete("/me", s.DeleteMyAccount)
	// Specific /:id/:resource routes before the generic /:id route
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id", s.GetUserProfile)

	// Friend routes
	friends := protected.Group("/friends")
	friends.Get("/", s.GetFriends)
	friends.Post("/:userId", routeLimiter(30, time.Minute, "friend"), s.AddFriend)
	friends.Delete("/:userId", s.RemoveFriend)

	// Protected post routes
	posts := protected.Group("/posts")
	posts.Get("/feed", s.GetFeed)
	posts.Post("/", routeLimiter(5, 5*time.Minute, "create_post"), s.CreatePost)
	// Specific /:id/:resource routes before generic /:id routes
	posts.Post("/:id/like", s.LikePost)
	posts.Post("/:id/comments", routeLimiter(10, time.Minute, "create_comment"), s.CreateComment)
	posts.Post("/:id/comments/:commentId/like", s.LikeComment)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The stores live in process
// memory, so readiness reduces to the process being up and serving.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "photofeed",
		"status":  "healthy",
		"time":    time.Now(),
	})
}

// userID returns the authenticated caller's id set by the auth middleware.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config      *config.Config
	db          *gorm.DB
	redis       *redis.Client
	app         *fiber.App
	userRepo    repository.UserRepository
	blogRepo    repository.BlogRepository
	projectRepo repository.ProjectRepository
	profileRepo repository.ProfileRepository

	authService    *service.AuthService
	userService    *service.UserService
	blogService    *service.BlogService
	projectService *service.ProjectService
	profileService *service.ProfileService

	oauthConfig *oauth2.Config
}

// NewServer creates a server instance, establishing its own DB and Redis
// connections.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		redis:       redisClient,
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		projectRepo: projectRepo,
		profileRepo: profileRepo,
	}
	s.authService = service.NewAuthService(userRepo, cfg)
	s.userService = service.NewUserService(userRepo, cfg.BcryptCost)
	s.blogService = service.NewBlogService(blogRepo)
	s.projectService = service.NewProjectService(projectRepo)
	s.profileService = service.NewProfileService(profileRepo)

	if cfg.GoogleClientID != "" {
		s.oauthConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	return s, nil
}

// NewApp builds the Fiber app with the central error handler, middleware and
// routes configured.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio API",
		ErrorHandler: s.errorHandler,
	})
	s.app = app
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler is the single point translating any error into the JSON
// envelope. The stack detail is attached only outside production.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := models.ErrorBody{Message: "Something went wrong!"}

	var appErr *models.AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		body.Message = appErr.Message
		body.Errors = appErr.Errors
		if appErr.Err != nil && !s.isProduction() {
			body.Stack = appErr.Err.Error()
		}
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		body.Message = fiberErr.Message
	default:
		if !s.isProduction() {
			body.Stack = err.Error()
		}
	}

	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
			slog.String("error", err.Error()))
	}

	return c.Status(status).JSON(body)
}

func (s *Server) isProduction() bool {
	return s.config.Env == "production" || s.config.Env == "prod"
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/refresh-token", s.RefreshToken)
	auth.Post("/logout", s.Logout)
	auth.Get("/google", s.GoogleLogin)
	auth.Get("/google/callback", s.GoogleCallback)

	admins := []models.Role{models.RoleAdmin, models.RoleSuperAdmin}
	anyRole := []models.Role{models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin}

	users := api.Group("/user")
	users.Post("/", s.RequireRoles(admins...), s.CreateUser)
	users.Get("/", s.RequireRoles(admins...), s.GetAllUsers)
	users.Get("/:id", s.RequireRoles(anyRole...), s.GetSingleUser)
	users.Patch("/:id", s.RequireRoles(anyRole...), s.UpdateUser)
	users.Delete("/:id", s.RequireRoles(admins...), s.DeleteUser)

	blogs := api.Group("/blog")
	blogs.Post("/", s.RequireRoles(admins...), s.CreateBlog)
	blogs.Get("/", s.GetAllBlogs)
	blogs.Get("/stats", s.GetBlogStats)
	blogs.Get("/:id", s.GetSingleBlog)
	blogs.Patch("/:id", s.RequireRoles(admins...), s.UpdateBlog)
	blogs.Delete("/:id", s.RequireRoles(admins...), s.DeleteBlog)

	projects := api.Group("/project")
	projects.Post("/", s.RequireRoles(admins...), s.CreateProject)
	projects.Get("/", s.GetAllProjects)
	projects.Get("/:id", s.GetSingleProject)
	projects.Patch("/:id", s.RequireRoles(admins...), s.UpdateProject)
	projects.Delete("/:id", s.RequireRoles(admins...), s.DeleteProject)

	profiles := api.Group("/profile")
	profiles.Post("/", s.RequireRoles(admins...), s.CreateProfile)
	profiles.Get("/", s.GetAllProfiles)
	profiles.Get("/:id", s.GetSingleProfile)
	profiles.Patch("/:id", s.RequireRoles(admins...), s.UpdateProfile)
	profiles.Delete("/:id", s.RequireRoles(admins...), s.DeleteProfile)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
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

// Start runs the HTTP server.
func (s *Server) Start() error {
	app := s.NewApp()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server and closes its connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", slog.String("error", cerr.Error()))
		}
	}
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}
	middleware.Logger.Info("Server shutdown complete")
	return nil
}

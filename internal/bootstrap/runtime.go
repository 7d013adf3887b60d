// Package bootstrap wires up the runtime dependencies shared by the server
// and one-off commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Runtime holds the initialized shared dependencies.
type Runtime struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
}

// InitRuntime loads config, connects the database and Redis, and seeds the
// super admin account.
func InitRuntime() (*Runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	if err := SeedSuperAdmin(context.Background(), db, cfg); err != nil {
		return nil, fmt.Errorf("super admin seed failed: %w", err)
	}

	return &Runtime{Config: cfg, DB: db, Redis: cache.GetClient()}, nil
}

// SeedSuperAdmin ensures the configured super admin account exists. It is
// idempotent: when the email is already registered nothing is changed.
func SeedSuperAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		middleware.Logger.Warn("super admin credentials not configured, skipping seed")
		return nil
	}

	userRepo := repository.NewUserRepository(db)
	existing, err := userRepo.GetByEmail(ctx, cfg.SuperAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:       "Super admin",
		Email:      cfg.SuperAdminEmail,
		Password:   string(hashed),
		Role:       models.RoleSuperAdmin,
		Phone:      "01711111111",
		Status:     models.UserStatusActive,
		IsVerified: true,
		Auths: []models.AuthProvider{
			{Provider: models.ProviderCredentials, ProviderID: cfg.SuperAdminEmail},
		},
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	middleware.Logger.Info("super admin seeded", slog.String("email", cfg.SuperAdminEmail))
	return nil
}

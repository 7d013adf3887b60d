package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validConfig() *Config {
	return &Config{
		Port:                 "8080",
		Env:                  "development",
		DBPassword:           "password",
		DBSSLMode:            "disable",
		JWTAccessSecret:      "access-secret",
		JWTRefreshSecret:     "refresh-secret",
		JWTAccessExpiresHrs:  24,
		JWTRefreshExpiresHrs: 720,
		BcryptCost:           bcrypt.DefaultCost,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.JWTAccessSecret)
	assert.NotEmpty(t, cfg.JWTRefreshSecret)
	assert.NotEqual(t, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	assert.Equal(t, 24, cfg.JWTAccessExpiresHrs)
	assert.Equal(t, 720, cfg.JWTRefreshExpiresHrs)
}

func TestValidateAcceptsDevelopmentConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresDistinctSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.JWTRefreshSecret = cfg.JWTAccessSecret
	assert.Error(t, cfg.Validate())
}

func TestValidateBcryptCostBounds(t *testing.T) {
	cfg := validConfig()
	cfg.BcryptCost = bcrypt.MaxCost + 1
	assert.Error(t, cfg.Validate())

	cfg.BcryptCost = bcrypt.MinCost - 1
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaultSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTAccessSecret = "access-secret-change-in-production"
	cfg.JWTRefreshSecret = "refresh-secret-change-in-production"
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRequiresLongSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTAccessSecret = "short-access"
	cfg.JWTRefreshSecret = "short-refresh"
	cfg.DBPassword = "a-real-password"
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRequiresStrongDBPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTAccessSecret = "an-access-secret-that-is-long-enough-123"
	cfg.JWTRefreshSecret = "a-refresh-secret-that-is-long-enough-456"
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())
}

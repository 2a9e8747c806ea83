package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Port:           "8470",
		JWTSecret:      strings.Repeat("s", 32),
		AllowedOrigins: "http://localhost:5173",
		Env:            "development",
		LogLevel:       "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_MissingSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_ProductionRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Env = "prod"
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_DevelopmentAllowsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.JWTSecret = "short"
	assert.NoError(t, cfg.Validate())
}

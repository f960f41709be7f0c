package internal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frahmantamala/finance-tracker/internal"
)

func validConfig() *internal.Config {
	return &internal.Config{
		Server: internal.ServerConfig{
			Port:         5000,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  time.Minute,
		},
		Database: internal.DatabaseConfig{
			Source:       "postgres://localhost:5432/finance",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Security: internal.SecurityConfig{
			JWTSecret:      strings.Repeat("s", 32),
			AccessTokenTTL: time.Hour,
			BCryptCost:     10,
		},
		Logging: internal.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*internal.Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *internal.Config) { c.Server.Port = 0 },
			wantErr: "server config",
		},
		{
			name:    "missing database source",
			mutate:  func(c *internal.Config) { c.Database.Source = "" },
			wantErr: "source is required",
		},
		{
			name:    "idle conns above open conns",
			mutate:  func(c *internal.Config) { c.Database.MaxIdleConns = 20 },
			wantErr: "max_idle_conns",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *internal.Config) { c.Security.JWTSecret = "short" },
			wantErr: "jwt secret",
		},
		{
			name:    "token ttl below a minute",
			mutate:  func(c *internal.Config) { c.Security.AccessTokenTTL = time.Second },
			wantErr: "access_token_ttl",
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(c *internal.Config) { c.Security.BCryptCost = 50 },
			wantErr: "bcrypt_cost",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *internal.Config) { c.Logging.Level = "verbose" },
			wantErr: "log level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *internal.Config) { c.Logging.Format = "xml" },
			wantErr: "log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATABASE_SOURCE", "postgres://localhost:5432/finance")
	t.Setenv("SECURITY_JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("SECURITY_ACCESS_TOKEN_TTL", "2h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := internal.LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost:5432/finance", cfg.Database.Source)
	assert.Equal(t, 2*time.Hour, cfg.Security.AccessTokenTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// defaults fill everything not set explicitly
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Security.BCryptCost)
	assert.Equal(t, "api/openapi.yml", cfg.Security.OpenAPISpecPath)
	assert.NoError(t, cfg.Validate())
}

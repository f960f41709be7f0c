package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"http_server" envPrefix:"SERVER_"`
	Database DatabaseConfig `mapstructure:"database" envPrefix:"DATABASE_"`
	Security SecurityConfig `mapstructure:"security" envPrefix:"SECURITY_"`
	Logging  LoggingConfig  `mapstructure:"logging" envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" env:"PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type DatabaseConfig struct {
	Source          string        `mapstructure:"source" env:"SOURCE"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

type SecurityConfig struct {
	// JWTSecret is the process-wide HS256 signing key, loaded once at
	// startup and injected into the token generator.
	JWTSecret       string        `mapstructure:"jwt_secret" env:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl" env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	BCryptCost      int           `mapstructure:"bcrypt_cost" env:"BCRYPT_COST" envDefault:"10"`
	OpenAPISpecPath string        `mapstructure:"openapi_spec_path" env:"OPENAPI_SPEC_PATH" envDefault:"api/openapi.yml"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" env:"LEVEL" envDefault:"info"`
	Format string `mapstructure:"format" env:"FORMAT" envDefault:"text"`
}

// LoadConfigFromEnv builds a Config purely from environment variables,
// used for Docker and production deployments.
func LoadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config from environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}

func (c *SecurityConfig) Validate() error {
	if len(c.JWTSecret) < 32 {
		return errors.New("jwt secret must be at least 32 characters")
	}
	if c.AccessTokenTTL < time.Minute {
		return errors.New("access_token_ttl must be at least 1 minute")
	}
	if c.BCryptCost < 4 || c.BCryptCost > 31 {
		return fmt.Errorf("bcrypt_cost %d out of range", c.BCryptCost)
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	return nil
}

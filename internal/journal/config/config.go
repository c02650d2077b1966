// Package config содержит конфигурацию сервиса devjournal.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	pkgconfig "devjournal/pkg/config"
	"devjournal/pkg/logger"
)

const (
	serviceName = "journal"

	// EnvConfigFile переопределяет путь к env-файлу.
	EnvConfigFile = "JOURNAL_CONFIG_FILE"

	LogConfigLoaded     = "journal configuration resolved"
	ErrFailedLoadConfig = "failed to load configuration"
	ErrInvalidConfig    = "invalid configuration"
)

// Ошибки валидации конфигурации.
var (
	ErrEmptySessionSecret  = errors.New("session secret must be set in production")
	ErrUnknownSessionStore = errors.New("unknown session backend")
	ErrInvalidSessionTTL   = errors.New("session ttl must be positive")
	ErrEmptyDataFile       = errors.New("data file path must not be empty")
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Storage  StorageConfig  `yaml:"storage"`
	Session  SessionConfig  `yaml:"session"`
	Password PasswordConfig `yaml:"password"`
	Redis    RedisConfig    `yaml:"redis"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает и проверяет конфигурацию.
func Load(ctx context.Context) (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = filepath.Join("deploy", ".env")
	}

	cfg, err := pkgconfig.Load[Config](ctx, serviceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("data_file", cfg.Storage.DataFile),
		zap.String("session_backend", cfg.Session.Backend),
		zap.Duration("session_ttl", cfg.Session.TTL),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Validate проверяет согласованность значений.
func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return ErrEmptyDataFile
	}
	if c.Session.TTL <= 0 {
		return ErrInvalidSessionTTL
	}
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSessionStore, c.Session.Backend)
	}
	if c.Session.Secret == "" && c.Logging.GetEnvironment() == logger.Production {
		return ErrEmptySessionSecret
	}
	return nil
}

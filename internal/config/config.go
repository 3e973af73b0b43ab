// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds everything the server command needs to wire itself
type Config struct {
	GRPCPort           int    `env:"SHEET_GRPC_PORT" envDefault:"50051"`
	Store              string `env:"SHEET_STORE" envDefault:"redis"`
	RedisAddr          string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath         string `env:"SQLITE_PATH" envDefault:"rpg-sheet.db"`
	DefaultCharacterID string `env:"SHEET_CHARACTER_ID" envDefault:"default"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`

	Narrative NarrativeConfig
	Portrait  PortraitConfig
	RollLog   RollLogConfig
}

// NarrativeConfig configures the chat-completion adapter and its batching
type NarrativeConfig struct {
	BaseURL  string        `env:"NARRATIVE_BASE_URL" envDefault:"https://api.openai.com/v1"`
	APIKey   string        `env:"NARRATIVE_API_KEY"`
	Model    string        `env:"NARRATIVE_MODEL" envDefault:"gpt-4o-mini"`
	Debounce time.Duration `env:"NARRATIVE_DEBOUNCE" envDefault:"3s"`
	Timeout  time.Duration `env:"NARRATIVE_TIMEOUT" envDefault:"20s"`
}

// PortraitConfig configures the image-generation adapter
type PortraitConfig struct {
	BaseURL string `env:"PORTRAIT_BASE_URL" envDefault:"https://api.openai.com/v1"`
	APIKey  string `env:"PORTRAIT_API_KEY"`
	Model   string `env:"PORTRAIT_MODEL" envDefault:"dall-e-3"`
	Size    string `env:"PORTRAIT_SIZE" envDefault:"1024x1024"`
}

// RollLogConfig bounds the per-character roll history
type RollLogConfig struct {
	TTL  time.Duration `env:"ROLL_LOG_TTL" envDefault:"24h"`
	Size int           `env:"ROLL_LOG_SIZE" envDefault:"50"`
}

// Load reads an optional .env file then parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return Parse()
}

// Parse reads the environment into a validated Config
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse environment")
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values the server cannot start without
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("SHEET_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("SHEET_STORE", c.Store, []string{StoreRedis, StoreSQLite}, vb)
	errors.ValidateRequired("SHEET_CHARACTER_ID", c.DefaultCharacterID, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	}

	if c.Narrative.Debounce <= 0 {
		vb.Field("NARRATIVE_DEBOUNCE", "must be positive")
	}
	if c.Narrative.Timeout <= 0 {
		vb.Field("NARRATIVE_TIMEOUT", "must be positive")
	}
	if c.RollLog.Size < 1 {
		vb.Field("ROLL_LOG_SIZE", "must be at least 1")
	}

	return vb.Build()
}

// SlogLevel maps LOG_LEVEL onto a slog.Level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Addr is the listen address for the gRPC server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// Package config loads application configuration from environment variables.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr        string
	DBPath            string
	SecretKey         []byte // 32 bytes, or nil when credential storage is disabled.
	GeminiAPIKey      string
	YouTubeAPIKey     string
	GeminiBaseURL     string
	GenerationTimeout time.Duration
	LogLevel          slog.Level
	LogFormat         string
}

// HasSecretKey reports whether credential storage can be used.
func (c *Config) HasSecretKey() bool {
	return len(c.SecretKey) == 32
}

// LoadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional. Defaults: CREATORTOOLS_LISTEN_ADDR (127.0.0.1:8080),
// CREATORTOOLS_DB_PATH (creatortools.db), CREATORTOOLS_GENERATION_TIMEOUT (30s),
// CREATORTOOLS_LOG_LEVEL (info), CREATORTOOLS_LOG_FORMAT (text).
// CREATORTOOLS_SECRET_KEY must be 64 hex characters when set; without it
// credentials cannot be stored and every tool runs on the local generator.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:        "127.0.0.1:8080",
		DBPath:            "creatortools.db",
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("CREATORTOOLS_GEMINI_API_KEY")),
		YouTubeAPIKey:     strings.TrimSpace(os.Getenv("CREATORTOOLS_YOUTUBE_API_KEY")),
		GeminiBaseURL:     "https://generativelanguage.googleapis.com",
		GenerationTimeout: 30 * time.Second,
		LogLevel:          slog.LevelInfo,
		LogFormat:         LogFormatText,
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_DB_PATH"); ok {
		cfg.DBPath = v
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_SECRET_KEY"); ok && v != "" {
		key, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("CREATORTOOLS_SECRET_KEY is not valid hex: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("CREATORTOOLS_SECRET_KEY must be 64 hex characters (32 bytes), got %d bytes", len(key))
		}
		cfg.SecretKey = key
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_GEMINI_BASE_URL"); ok && v != "" {
		cfg.GeminiBaseURL = strings.TrimSuffix(v, "/")
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_GENERATION_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CREATORTOOLS_GENERATION_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("CREATORTOOLS_GENERATION_TIMEOUT must be positive, got %s", parsed)
		}
		cfg.GenerationTimeout = parsed
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_LOG_LEVEL"); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("CREATORTOOLS_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	if v, ok := os.LookupEnv("CREATORTOOLS_LOG_FORMAT"); ok && v != "" {
		switch f := strings.ToLower(v); f {
		case LogFormatText, LogFormatJSON:
			cfg.LogFormat = f
		default:
			return nil, fmt.Errorf("CREATORTOOLS_LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, v)
		}
	}

	return cfg, nil
}

// Package config — layered run configuration.
// Values come from built-in defaults, then an optional TOML file, then
// CAREERLADDER_* environment variables (a .env file is loaded first).
// Command-line flags are applied on top by the cmd package.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/gaurav-prasanna/careerladder/core/fetch"
	"github.com/gaurav-prasanna/careerladder/core/pipeline"
	"github.com/gaurav-prasanna/careerladder/core/render"
	"github.com/gaurav-prasanna/careerladder/crawl"
)

//go:embed players.txt
var defaultPlayers string

//go:embed sample_config.toml
var sampleConfig string

const envPrefix = "CAREERLADDER_"

// Fetch controls how profile pages are retrieved.
type Fetch struct {
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	IntervalMillis int    `toml:"interval_ms"`
	Browser        bool   `toml:"browser"`
}

// Cache configures the optional Redis page cache.
type Cache struct {
	RedisURL string `toml:"redis_url"`
	TTLHours int    `toml:"ttl_hours"`
}

// Output controls where and how a batch is exported.
type Output struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
	Name   string `toml:"name"`
}

// Logging holds the log level name.
type Logging struct {
	Level string `toml:"level"`
}

// Config is the full run configuration.
type Config struct {
	Fetch   Fetch    `toml:"fetch"`
	Cache   Cache    `toml:"cache"`
	Output  Output   `toml:"output"`
	Logging Logging  `toml:"logging"`
	Players []string `toml:"players"`
}

// Default returns the built-in configuration, including the legendary
// player list.
func Default() Config {
	players, err := crawl.ReadList(strings.NewReader(defaultPlayers))
	if err != nil {
		// The embedded list is a string; reading it cannot fail.
		panic(err)
	}
	return Config{
		Fetch: Fetch{
			UserAgent:      fetch.DefaultUserAgent,
			TimeoutSeconds: int(fetch.DefaultTimeout / time.Second),
			IntervalMillis: int(pipeline.DefaultInterval / time.Millisecond),
		},
		Cache: Cache{
			TTLHours: 24,
		},
		Output: Output{
			Dir:    ".",
			Format: "json",
			Name:   "players",
		},
		Logging: Logging{
			Level: "info",
		},
		Players: players,
	}
}

// Sample returns an annotated example configuration file.
func Sample() string {
	return sampleConfig
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), the dotenv file at dotenvPath (skipped when empty or
// missing) and the process environment, then validates it.
func Load(path, dotenvPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.Fetch.UserAgent = envOr("USER_AGENT", c.Fetch.UserAgent)
	c.Fetch.TimeoutSeconds = envInt("TIMEOUT_SECONDS", c.Fetch.TimeoutSeconds)
	c.Fetch.IntervalMillis = envInt("INTERVAL_MS", c.Fetch.IntervalMillis)
	c.Fetch.Browser = envBool("BROWSER", c.Fetch.Browser)
	c.Cache.RedisURL = envOr("REDIS_URL", c.Cache.RedisURL)
	c.Cache.TTLHours = envInt("CACHE_TTL_HOURS", c.Cache.TTLHours)
	c.Output.Dir = envOr("OUTPUT_DIR", c.Output.Dir)
	c.Output.Format = envOr("FORMAT", c.Output.Format)
	c.Output.Name = envOr("OUTPUT_NAME", c.Output.Name)
	c.Logging.Level = envOr("LOG_LEVEL", c.Logging.Level)
	c.Players = envList("PLAYERS", c.Players)
}

// normalize canonicalizes player URLs and trims string fields.
func (c *Config) normalize() error {
	players, err := crawl.ReadList(strings.NewReader(strings.Join(c.Players, "\n")))
	if err != nil {
		return err
	}
	c.Players = players
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Level = strings.TrimSpace(c.Logging.Level)
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive, got %d", c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.IntervalMillis < 0 {
		return fmt.Errorf("fetch.interval_ms must not be negative, got %d", c.Fetch.IntervalMillis)
	}
	if c.Cache.TTLHours <= 0 {
		return fmt.Errorf("cache.ttl_hours must be positive, got %d", c.Cache.TTLHours)
	}
	if _, err := render.ForFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// RequestTimeout is the per-page fetch timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// RequestInterval is the minimum pause between players in a batch.
func (c *Config) RequestInterval() time.Duration {
	return time.Duration(c.Fetch.IntervalMillis) * time.Millisecond
}

// CacheTTL is how long a fetched page stays in the cache.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// LogLevel parses Logging.Level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(envPrefix + key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(envPrefix + key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(envPrefix + key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// Package config loads Janus settings from an optional YAML file and the
// environment. Environment variables win over the file; the file wins over
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when JANUS_CONFIG is unset
const DefaultPath = "janus.yaml"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AnalysisConfig points at the analysis service
type AnalysisConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// RedisConfig holds Redis connection configuration.
// An empty URL keeps session state in memory.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
}

// SessionConfig controls session lifetime
type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Config holds all application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Redis       RedisConfig       `yaml:"redis"`
	Session     SessionConfig     `yaml:"session"`
	Sport       string            `yaml:"sport"`
	Timezone    string            `yaml:"timezone"`
	CORSOrigins []string          `yaml:"cors_origins"` // empty: same-origin only
	LogLevel    string            `yaml:"log_level"`
	TeamLogos   map[string]string `yaml:"team_logos"`

	// Warnings lists settings that were invalid and replaced by defaults
	Warnings []string `yaml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8090"},
		Analysis: AnalysisConfig{BaseURL: "http://localhost:5000", Timeout: 10 * time.Second},
		Session:  SessionConfig{TTL: 12 * time.Hour, SweepInterval: 5 * time.Minute},
		Sport:    "baseball_mlb",
		Timezone: "America/New_York",
		LogLevel: "info",
	}
}

// LoadConfig loads .env (if present), then the YAML file at path, then
// environment overrides. An empty path means JANUS_CONFIG or DefaultPath;
// a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = getEnv("JANUS_CONFIG", DefaultPath)
	}

	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("JANUS_ADDR", c.Server.Addr)
	c.Analysis.BaseURL = getEnv("ANALYSIS_URL", c.Analysis.BaseURL)
	c.Analysis.Timeout = c.durationEnv("ANALYSIS_TIMEOUT", c.Analysis.Timeout)
	c.Redis.URL = getEnv("REDIS_URL", c.Redis.URL)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Session.TTL = c.durationEnv("SESSION_TTL", c.Session.TTL)
	c.Session.SweepInterval = c.durationEnv("SESSION_SWEEP_INTERVAL", c.Session.SweepInterval)
	c.Sport = getEnv("SPORT", c.Sport)
	c.Timezone = getEnv("JANUS_TZ", c.Timezone)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.CORSOrigins = splitList(origins)
	}
}

// fillDefaults replaces zero or negative durations from the file
func (c *Config) fillDefaults() {
	def := Default()
	if c.Analysis.Timeout <= 0 {
		c.Analysis.Timeout = def.Analysis.Timeout
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = def.Session.TTL
	}
	if c.Session.SweepInterval <= 0 {
		c.Session.SweepInterval = def.Session.SweepInterval
	}
}

// Validate checks settings that have no usable default
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address is required")
	}
	if c.Analysis.BaseURL == "" {
		return errors.New("analysis base url is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the dashboard timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// UseRedis reports whether session state goes to Redis
func (c *Config) UseRedis() bool {
	return c.Redis.URL != ""
}

// RedisOptions builds client options from either a redis:// URL or a host:port
func (c *Config) RedisOptions() (*redis.Options, error) {
	if strings.HasPrefix(c.Redis.URL, "redis://") || strings.HasPrefix(c.Redis.URL, "rediss://") {
		opts, err := redis.ParseURL(c.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		if c.Redis.Password != "" {
			opts.Password = c.Redis.Password
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     c.Redis.URL,
		Password: c.Redis.Password,
	}, nil
}

func (c *Config) durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("Invalid %s '%s', using default %s", key, raw, fallback))
		return fallback
	}
	return d
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

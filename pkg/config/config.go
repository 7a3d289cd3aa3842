package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Cache   CacheConfig   `yaml:"cache"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// CatalogConfig configures the metadata platform client
type CatalogConfig struct {
	BaseURL          string        `yaml:"base_url"`
	APIKey           string        `yaml:"api_key"`
	Timeout          time.Duration `yaml:"timeout"`
	FetchConcurrency int           `yaml:"fetch_concurrency"`
	DefaultDepth     int           `yaml:"default_depth"`
}

// CacheConfig configures the lineage result cache
type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	MaxSize int           `yaml:"max_size"`
}

// LayoutConfig configures default layout spacing
type LayoutConfig struct {
	HorizontalSpacing float64 `yaml:"horizontal_spacing"`
	VerticalSpacing   float64 `yaml:"vertical_spacing"`
	RadiusBase        float64 `yaml:"radius_base"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with safe defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20, // 1MB request bodies
		},
		Catalog: CatalogConfig{
			Timeout:          60 * time.Second,
			FetchConcurrency: 5,
			DefaultDepth:     21,
		},
		Cache: CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 256,
		},
		Layout: LayoutConfig{
			HorizontalSpacing: 250,
			VerticalSpacing:   120,
			RadiusBase:        200,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides on top. An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CATALOG_BASE_URL"); v != "" {
		c.Catalog.BaseURL = v
	}
	if v := os.Getenv("CATALOG_API_KEY"); v != "" {
		c.Catalog.APIKey = v
	}
	if v := os.Getenv("CATALOG_FETCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Catalog.FetchConcurrency = n
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Cache.TTL = d
		}
	}
	if v := os.Getenv("CACHE_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Cache.MaxSize = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Catalog.FetchConcurrency < 1 {
		return fmt.Errorf("catalog.fetch_concurrency must be at least 1, got %d", c.Catalog.FetchConcurrency)
	}
	if c.Catalog.DefaultDepth < 1 || c.Catalog.DefaultDepth > 21 {
		return fmt.Errorf("catalog.default_depth must be in [1,21], got %d", c.Catalog.DefaultDepth)
	}
	if c.Cache.MaxSize < 1 {
		return fmt.Errorf("cache.max_size must be at least 1, got %d", c.Cache.MaxSize)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Layout.HorizontalSpacing <= 0 || c.Layout.VerticalSpacing <= 0 {
		return fmt.Errorf("layout spacing values must be positive")
	}
	if c.Layout.RadiusBase <= 0 {
		return fmt.Errorf("layout.radius_base must be positive, got %v", c.Layout.RadiusBase)
	}
	return nil
}

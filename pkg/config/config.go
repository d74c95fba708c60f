// Package config loads the TOML configuration shared by the CLI and the
// dashboard server.
//
// Configuration is layered: compiled-in defaults, then the config file
// (~/.config/misinfo/config.toml by default), then command-line flags.
// A missing config file is not an error; defaults apply.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/cache"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
)

// Config is the full application configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Cache   CacheConfig   `toml:"cache"`
	Layout  LayoutConfig  `toml:"layout"`
	Render  RenderConfig  `toml:"render"`
}

// ServiceConfig locates the analysis service.
type ServiceConfig struct {
	// BaseURL is the analysis service root, e.g. "http://localhost:8000".
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds each detect request. Analysis scrapes the
	// article and runs models, so this is generous by default.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// CacheConfig selects and configures the verdict cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`

	// RedisAddr is the host:port of the Redis server.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// MongoURI, MongoDatabase, and MongoCollection configure the mongo
	// backend.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`

	// TTLHours is how long cached verdicts stay fresh. 0 means forever.
	TTLHours int `toml:"ttl_hours"`
}

// LayoutConfig overrides force simulation parameters. Zero values fall
// back to the layout package defaults.
type LayoutConfig struct {
	Repulsion       float64 `toml:"repulsion"`
	SpringLength    float64 `toml:"spring_length"`
	SpringStiffness float64 `toml:"spring_stiffness"`
	Damping         float64 `toml:"damping"`
	MaxSteps        int     `toml:"max_steps"`
	Seed            int64   `toml:"seed"`
}

// RenderConfig sets render output defaults.
type RenderConfig struct {
	// Format is the default output format: svg, png, dot, or json.
	Format string `toml:"format"`

	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Defaults returns the compiled-in configuration.
func Defaults() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 120,
		},
		Cache: CacheConfig{
			Backend:         "file",
			RedisAddr:       "localhost:6379",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "misinfo",
			MongoCollection: "verdicts",
			TTLHours:        24,
		},
		Render: RenderConfig{
			Format: "svg",
			Width:  800,
			Height: 600,
		},
	}
}

// DefaultPath returns the default config file location
// (~/.config/misinfo/config.toml on Linux).
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "misinfo", "config.toml")
}

// Load reads a TOML config file layered over [Defaults]. A missing file
// at the default path yields the defaults; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case "file", "redis", "mongo", "none", "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s", c.Cache.Backend)
	}
	switch c.Render.Format {
	case "svg", "png", "dot", "json", "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown render format: %s", c.Render.Format)
	}
	if c.Service.TimeoutSeconds < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout_seconds must be >= 0")
	}
	return nil
}

// Apply layers the non-zero overrides from the layout section onto base.
func (c LayoutConfig) Apply(base layout.Config) layout.Config {
	if c.Repulsion > 0 {
		base.Repulsion = c.Repulsion
	}
	if c.SpringLength > 0 {
		base.SpringLength = c.SpringLength
	}
	if c.SpringStiffness > 0 {
		base.SpringStiffness = c.SpringStiffness
	}
	if c.Damping > 0 {
		base.Damping = c.Damping
	}
	if c.MaxSteps > 0 {
		base.MaxSteps = c.MaxSteps
	}
	if c.Seed != 0 {
		base.Seed = c.Seed
	}
	return base
}

// CacheOptions maps the cache section onto backend options.
func (c CacheConfig) CacheOptions() cache.Options {
	return cache.Options{
		Backend:         c.Backend,
		Dir:             c.Dir,
		RedisAddr:       c.RedisAddr,
		RedisPassword:   c.RedisPassword,
		RedisDB:         c.RedisDB,
		MongoURI:        c.MongoURI,
		MongoDatabase:   c.MongoDatabase,
		MongoCollection: c.MongoCollection,
	}
}

// Timeout returns the detect request timeout as a duration.
func (c ServiceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TTL returns the cache time-to-live as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

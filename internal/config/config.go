// Package config resolves process configuration for the assistant tools server.
//
// Values are layered, lowest precedence first: built-in defaults, an optional
// YAML file, a .env file in the working directory, then the process environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

const (
	defaultPort    = 8080
	defaultDirName = ".assistant-tools"
	dotEnvFile     = ".env"
)

// Sentinel errors returned by Validate.
var (
	ErrUnknownDriver = errors.New("unknown store driver")
	ErrMissingURI    = errors.New("mongo driver requires MONGODB_URI")
	ErrInvalidPort   = errors.New("invalid port")
)

// Config holds the server configuration.
type Config struct {
	Port   int         `yaml:"port"`
	APIKey string      `yaml:"api_key"`
	Store  StoreConfig `yaml:"store"`
	Log    LogConfig   `yaml:"log"`
}

// StoreConfig selects and configures the memory store backend.
type StoreConfig struct {
	Driver        string `yaml:"driver"`
	MongoURI      string `yaml:"mongodb_uri"`
	MongoDatabase string `yaml:"mongodb_database"`
	SQLiteDataDir string `yaml:"sqlite_data_dir"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// LookupFunc resolves a configuration key, reporting whether it was set.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Port: defaultPort,
		Store: StoreConfig{
			SQLiteDataDir: filepath.Join(home, defaultDirName),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty), ./.env and the process environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	dotenv, err := godotenv.Read(dotEnvFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", dotEnvFile, err)
	}

	if err := cfg.ApplyEnv(chainLookup(os.LookupEnv, mapLookup(dotenv))); err != nil {
		return nil, err
	}
	cfg.resolveDriver()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.Merge(&loaded)
	return nil
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Port != 0 {
		c.Port = source.Port
	}
	if source.APIKey != "" {
		c.APIKey = source.APIKey
	}
	if source.Store.Driver != "" {
		c.Store.Driver = source.Store.Driver
	}
	if source.Store.MongoURI != "" {
		c.Store.MongoURI = source.Store.MongoURI
	}
	if source.Store.MongoDatabase != "" {
		c.Store.MongoDatabase = source.Store.MongoDatabase
	}
	if source.Store.SQLiteDataDir != "" {
		c.Store.SQLiteDataDir = source.Store.SQLiteDataDir
	}
	if source.Log.Level != "" {
		c.Log.Level = source.Log.Level
	}
	if source.Log.Format != "" {
		c.Log.Format = source.Log.Format
	}
}

// ApplyEnv overrides fields from environment-style keys.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PORT %q: %w", v, ErrInvalidPort)
		}
		c.Port = port
	}

	strs := map[string]*string{
		"API_KEY":          &c.APIKey,
		"STORE_DRIVER":     &c.Store.Driver,
		"MONGODB_URI":      &c.Store.MongoURI,
		"MONGODB_DATABASE": &c.Store.MongoDatabase,
		"SQLITE_DATA_DIR":  &c.Store.SQLiteDataDir,
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	return nil
}

// resolveDriver picks mongo when a URI is configured and no driver was named.
func (c *Config) resolveDriver() {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if c.Store.Driver != "" {
		return
	}
	if c.Store.MongoURI != "" {
		c.Store.Driver = DriverMongo
	} else {
		c.Store.Driver = DriverSQLite
	}
}

// Validate reports configuration that cannot start a server.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d: %w", c.Port, ErrInvalidPort)
	}

	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.MongoURI == "" {
			return fmt.Errorf("config: %w", ErrMissingURI)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("config: %w: %q", ErrUnknownDriver, c.Store.Driver)
	}
	return nil
}

// AuthEnabled reports whether requests must present the shared secret.
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names
// resolve to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
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

func chainLookup(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

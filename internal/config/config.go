package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/example/farmhand/internal/db"
	"github.com/example/farmhand/internal/logging"
)

// DirName is the per-project configuration directory.
const DirName = ".farmhand"

// Record store backends
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// DefaultUpcomingLimit is how many upcoming tasks the dashboard lists.
const DefaultUpcomingLimit = 5

// Environment overrides
const (
	EnvDBPath        = "FARMHAND_DB_PATH"
	EnvStore         = "FARMHAND_STORE"
	EnvLogLevel      = "FARMHAND_LOG_LEVEL"
	EnvLogEncoding   = "FARMHAND_LOG_ENCODING"
	EnvUpcomingLimit = "FARMHAND_UPCOMING_LIMIT"
)

// Config represents the farmhand configuration
type Config struct {
	Version       string         `json:"version"`
	Store         string         `json:"store"`             // "sqlite" or "memory"
	DBPath        string         `json:"db_path,omitempty"` // sqlite file
	UpcomingLimit int            `json:"upcoming_limit,omitempty"`
	Logger        logging.Config `json:"logger"`
}

// Default returns the configuration used when nothing is set. The
// database lives under the user's home directory.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Config{
		Version:       "1",
		Store:         StoreSQLite,
		DBPath:        db.DefaultPath(filepath.Join(home, DirName)),
		UpcomingLimit: DefaultUpcomingLimit,
		Logger:        logging.DefaultConfig(),
	}, nil
}

// LoadConfig reads .farmhand/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	var cfg Config
	if err := readInto(dir, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load resolves the effective configuration for dir: defaults, then
// .farmhand/config.json if present, then .env, then FARMHAND_*
// environment variables.
func Load(dir string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if err := readInto(dir, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required for the sqlite store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreMemory)
	}
	if c.UpcomingLimit < 0 {
		return fmt.Errorf("upcoming_limit must not be negative")
	}
	return nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func readInto(dir string, cfg *Config) error {
	path := filepath.Join(dir, DirName, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDBPath); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvStore); ok {
		cfg.Store = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Logger.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogEncoding); ok {
		cfg.Logger.Encoding = v
	}
	if v, ok := os.LookupEnv(EnvUpcomingLimit); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvUpcomingLimit, v, err)
		}
		cfg.UpcomingLimit = n
	}
	return nil
}

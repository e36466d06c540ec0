// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dpshade/vidgen/internal/logging"
	"github.com/dpshade/vidgen/internal/simulation"
	"github.com/dpshade/vidgen/internal/storage"
)

// Config is the process configuration. Flags override fields after Load.
type Config struct {
	Dir            string  `env:"VIDGEN_DIR"`
	CatalogPath    string  `env:"VIDGEN_CATALOG"`
	Storage        string  `env:"VIDGEN_STORAGE" envDefault:"file"`
	Speed          float64 `env:"VIDGEN_SPEED" envDefault:"1.0"`
	LogLevel       string  `env:"VIDGEN_LOG_LEVEL" envDefault:"info"`
	GlamourStyle   string  `env:"GLAMOUR_STYLE" envDefault:"auto"`
	WordBoundaries bool    `env:"VIDGEN_WORD_BOUNDARIES"`
}

// Load parses the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate normalizes the configuration in place. Speed is clamped rather
// than rejected; an unknown storage backend or log level is an error.
func (c *Config) Validate() error {
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	switch c.Storage {
	case "":
		c.Storage = storage.BackendFile
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage, storage.BackendFile, storage.BackendSQLite)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	c.Speed = simulation.ClampSpeed(c.Speed)

	if c.Dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Dir = filepath.Join(homeDir, ".vidgen")
	}
	if strings.HasPrefix(c.Dir, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Dir = filepath.Join(homeDir, c.Dir[2:])
	}

	if c.GlamourStyle == "" {
		c.GlamourStyle = "auto"
	}
	return nil
}

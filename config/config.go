// Package config holds the run configuration of the roamer CLI: which map
// to explore, how to seed the walk, the room ceiling, and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roamer/explore"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all roamer configuration.
type Config struct {
	// Map is the path of the map file to explore.
	Map string `yaml:"map"`

	// Seed fixes the exit choices; 0 means an unseeded, clock-based walk.
	Seed int64 `yaml:"seed"`

	// MaxRooms is the room ceiling of a run.
	MaxRooms int `yaml:"max_rooms"`

	// Output, when set, receives the recorded path.
	Output string `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxRooms: explore.DefaultMaxRooms,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML config file over the defaults and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, errors.Wrapf(err, "config: read %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "config: parse %s", path)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "config: create directory of %s", path)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "config: encode")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "config: write %s", path)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MaxRooms <= 0 {
		return fmt.Errorf("%w: max_rooms must be positive, got %d", ErrInvalidConfig, c.MaxRooms)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// applyEnvOverrides applies ROAMER_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ROAMER_MAP"); v != "" {
		c.Map = v
	}
	if v := os.Getenv("ROAMER_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: ROAMER_SEED: %v", ErrInvalidConfig, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("ROAMER_MAX_ROOMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ROAMER_MAX_ROOMS: %v", ErrInvalidConfig, err)
		}
		c.MaxRooms = n
	}
	if v := os.Getenv("ROAMER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Build constructs a zap logger for this logging configuration.
// verbose forces debug level.
func (l LoggingConfig) Build(verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if l.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

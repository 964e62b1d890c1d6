// Package config loads settings for the decoding tools.
//
// Configuration is a single YAML file. Values missing from the file keep
// their defaults; command-line flags override the file.
package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// Config is the tool configuration.
type Config struct {
	// Version is the engine version the input was written by.
	Version string `yaml:"version"`

	// ExportVersion is the engine version exported documents target.
	// Empty means Version.
	ExportVersion string `yaml:"export_version"`

	// Workers is the decode pool size.
	Workers int `yaml:"workers"`

	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: "5.6.0",
		Workers: 4,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Path(path).
			Cause(err).
			Build()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path(path).
			Cause(err).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, _, err := c.Versions(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.InvalidData(errors.PhaseConfig, []string{"workers"}, "must be at least 1")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Versions parses the source and export versions.
func (c *Config) Versions() (src, export version.Version, err error) {
	src, err = version.Parse(c.Version)
	if err != nil {
		return src, export, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path("version").
			Value(c.Version).
			Cause(err).
			Build()
	}
	if c.ExportVersion == "" {
		return src, src, nil
	}
	export, err = version.Parse(c.ExportVersion)
	if err != nil {
		return src, export, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path("export_version").
			Value(c.ExportVersion).
			Cause(err).
			Build()
	}
	return src, export, nil
}

// Level parses the log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path("log", "level").
			Value(c.Log.Level).
			Cause(err).
			Build()
	}
	return lvl, nil
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger() (*zap.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

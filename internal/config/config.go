// Package config loads the luckywheel configuration file and overlays
// environment variables on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"luckywheel/internal/pathutil"
	"luckywheel/internal/present"
	"luckywheel/internal/sitelist"
	"luckywheel/internal/wheel"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	AppName  = "luckywheel"
	FileName = "config.yaml"
)

// DefaultPalette colours the wheel segments in order, repeating as needed.
var DefaultPalette = []string{
	"#F87171", "#FBBF24", "#34D399", "#60A5FA",
	"#A78BFA", "#F472B6", "#5EEAD4", "#FACC15",
}

// Config is the top-level configuration.
type Config struct {
	Version string        `yaml:"version"`
	Source  string        `yaml:"source" env:"LUCKYWHEEL_SOURCE"`
	Filter  string        `yaml:"filter,omitempty" env:"LUCKYWHEEL_FILTER"`
	Wheel   WheelConfig   `yaml:"wheel"`
	Favicon FaviconConfig `yaml:"favicon"`
	HTTP    HTTPConfig    `yaml:"http"`

	// Debug is only ever set from the environment or the command line.
	Debug bool `yaml:"-" env:"LUCKYWHEEL_DEBUG"`
}

type WheelConfig struct {
	Duration    time.Duration `yaml:"duration" env:"LUCKYWHEEL_SPIN_DURATION"`
	Revolutions int           `yaml:"revolutions" env:"LUCKYWHEEL_REVOLUTIONS"`
	Palette     []string      `yaml:"palette,omitempty"`
}

type FaviconConfig struct {
	Enabled bool   `yaml:"enabled" env:"LUCKYWHEEL_FAVICON_ENABLED"`
	Service string `yaml:"service"`
	Size    int    `yaml:"size"`
}

// Present converts to the presenter's favicon settings.
func (f FaviconConfig) Present() present.FaviconConfig {
	return present.FaviconConfig{Enabled: f.Enabled, Service: f.Service, Size: f.Size}
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"LUCKYWHEEL_HTTP_TIMEOUT"`
}

// ValidationError reports a configuration value that is out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Source:  sitelist.DefaultSource,
		Wheel: WheelConfig{
			Duration:    wheel.DefaultDuration,
			Revolutions: wheel.DefaultRevolutions,
			Palette:     append([]string(nil), DefaultPalette...),
		},
		Favicon: FaviconConfig{
			Enabled: true,
			Service: present.DefaultFaviconService,
			Size:    present.DefaultFaviconSize,
		},
		HTTP: HTTPConfig{Timeout: 15 * time.Second},
	}
}

// DefaultPath is ~/.config/luckywheel/config.yaml, honouring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(pathutil.ConfigDir(AppName), FileName)
}

// Load reads a config file from path, applies environment overrides and
// validates the result. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	expanded := pathutil.Expand(path)

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	cfg.Version = ""
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == "" {
		return nil, errors.New("config missing version field")
	}
	if cfg.Version != "1" {
		return nil, fmt.Errorf("unsupported config version: %s", cfg.Version)
	}

	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load, except that a missing file yields the
// defaults (plus environment overrides) instead of an error.
func LoadOptional(path string) (*Config, error) {
	_, err := os.Stat(pathutil.Expand(path))
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := finish(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

func finish(cfg *Config) error {
	if err := ApplyEnv(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// ApplyEnv overlays LUCKYWHEEL_* environment variables onto cfg. Unset
// variables leave the current values alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Source == "":
		return &ValidationError{Field: "source", Message: "must not be empty"}
	case c.Wheel.Duration <= 0:
		return &ValidationError{Field: "wheel.duration", Message: "must be positive"}
	case c.Wheel.Revolutions < 1:
		return &ValidationError{Field: "wheel.revolutions", Message: "must be at least 1"}
	case c.Favicon.Size <= 0:
		return &ValidationError{Field: "favicon.size", Message: "must be positive"}
	case c.Favicon.Enabled && c.Favicon.Service == "":
		return &ValidationError{Field: "favicon.service", Message: "must not be empty when favicons are enabled"}
	case c.HTTP.Timeout <= 0:
		return &ValidationError{Field: "http.timeout", Message: "must be positive"}
	}
	for i, colour := range c.Wheel.Palette {
		if colour == "" {
			return &ValidationError{Field: fmt.Sprintf("wheel.palette[%d]", i), Message: "must not be empty"}
		}
	}
	return nil
}

// Palette returns the configured segment colours, or the default palette.
func (c *Config) Palette() []string {
	if len(c.Wheel.Palette) == 0 {
		return DefaultPalette
	}
	return c.Wheel.Palette
}

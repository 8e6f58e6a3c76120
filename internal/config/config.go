package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fwd1990man/GMapImageCollect/internal/capture"
	"github.com/fwd1990man/GMapImageCollect/internal/geo"
)

// Config describes one capture run.
type Config struct {
	// StartLat and StartLong locate the top-left cell of the grid.
	StartLat  float64 `yaml:"start_lat"`
	StartLong float64 `yaml:"start_long"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Zoom      int     `yaml:"zoom"`
	// Scale in (0,1] shrinks every tile to cut final resolution and file
	// size. Leave at 1 for production; 0.05-0.2 is handy for test runs.
	Scale float64 `yaml:"scale"`
	// SleepSeconds is the wait between navigation and capture, letting the
	// map finish its asynchronous imagery loads. 0 for testing, 3-5 for
	// production.
	SleepSeconds float64         `yaml:"sleep_seconds"`
	Offsets      capture.Offsets `yaml:"offsets"`
	MapsHost     string          `yaml:"maps_host"`
	// OutputPath is the target PNG. Empty means a timestamped file in the
	// current directory.
	OutputPath string `yaml:"output"`
}

// Default returns a config with the documented defaults filled in.
func Default() *Config {
	return &Config{
		Rows:     1,
		Cols:     1,
		Zoom:     18,
		Scale:    1,
		MapsHost: "www.google.com",
	}
}

// Load reads a YAML run configuration. Fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", c.Rows)
	}
	if c.Cols < 1 {
		return fmt.Errorf("cols must be at least 1, got %d", c.Cols)
	}
	if c.Scale <= 0 || c.Scale > 1 {
		return fmt.Errorf("scale must be in (0,1], got %g", c.Scale)
	}
	if c.SleepSeconds < 0 {
		return fmt.Errorf("sleep_seconds must not be negative, got %g", c.SleepSeconds)
	}
	if c.MapsHost == "" {
		return fmt.Errorf("maps_host must not be empty")
	}
	if err := c.Offsets.Validate(); err != nil {
		return err
	}
	if _, err := geo.CalibrationFor(c.Zoom); err != nil {
		return err
	}
	return nil
}

// Package config provides configuration loading and management for
// phantomgen. It handles loading configuration from YAML files and provides
// default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"phantomgen/pkg/phantom"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Synthesis parameters
	Synthesis struct {
		// NumWorkers specifies how many goroutines to use when
		// evaluating k-space samples in parallel
		NumWorkers int `yaml:"numWorkers"`

		// Variant selects the preset grayscale values: "original"
		// or "modified"
		Variant string `yaml:"variant"`

		// Coils is the number of receiver coils to simulate;
		// zero disables sensitivity weighting
		Coils int `yaml:"coils"`
	} `yaml:"synthesis"`

	// Trajectory parameters for radial sampling
	Trajectory struct {
		// SamplesPerSpoke is the number of samples along each spoke
		SamplesPerSpoke int `yaml:"samplesPerSpoke"`

		// Spokes is the number of radial spokes
		Spokes int `yaml:"spokes"`

		// GoldenAngle switches to golden-angle spoke ordering
		GoldenAngle bool `yaml:"goldenAngle"`
	} `yaml:"trajectory"`

	// Raster parameters for spatial-domain rendering
	Raster struct {
		// Size is the output grid side length
		Size int `yaml:"size"`
	} `yaml:"raster"`

	// Output parameters
	Output struct {
		// Directory receives generated images and dumps
		Directory string `yaml:"directory"`

		// SaveImages controls whether phantom images are written
		SaveImages bool `yaml:"saveImages"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`

	// Ellipses optionally overrides the preset table with user-supplied
	// parameter rows, six columns each: density, A, B, xc, yc, theta.
	Ellipses [][]float64 `yaml:"ellipses"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Synthesis.NumWorkers = runtime.NumCPU()
	cfg.Synthesis.Variant = "modified"
	cfg.Synthesis.Coils = 0

	cfg.Trajectory.SamplesPerSpoke = 128
	cfg.Trajectory.Spokes = 128
	cfg.Trajectory.GoldenAngle = false

	cfg.Raster.Size = 256

	cfg.Output.Directory = "phantom_output"
	cfg.Output.SaveImages = true
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the
// specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}

// Variant resolves the configured preset variant name
func (c *Config) Variant() (phantom.Variant, error) {
	switch c.Synthesis.Variant {
	case "", "modified":
		return phantom.Modified, nil
	case "original":
		return phantom.Original, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want \"original\" or \"modified\")", c.Synthesis.Variant)
	}
}

// Table resolves the ellipse table to synthesize: the user-supplied rows if
// present, otherwise the configured Shepp-Logan preset
func (c *Config) Table() (*phantom.Table, error) {
	if len(c.Ellipses) > 0 {
		return phantom.TableFromRows(c.Ellipses)
	}
	variant, err := c.Variant()
	if err != nil {
		return nil, err
	}
	return phantom.SheppLogan2D(variant), nil
}

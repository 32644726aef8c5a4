// Package config handles configuration loading for the command line tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Output Output `yaml:"output" json:"output"`
	Render Render `yaml:"render" json:"render"`
}

// Output controls how reports are encoded.
type Output struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // json or yaml
	Indent int    `yaml:"indent,omitempty" json:"indent,omitempty"`
}

// Render controls preview images.
type Render struct {
	Format      string  `yaml:"format,omitempty" json:"format,omitempty"` // webp or svg
	Fill        string  `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Background  string  `yaml:"background,omitempty" json:"background,omitempty"`
	Size        int     `yaml:"size,omitempty" json:"size,omitempty"`
	Padding     int     `yaml:"padding,omitempty" json:"padding,omitempty"`
	StrokeWidth float32 `yaml:"stroke_width,omitempty" json:"stroke_width,omitempty"`
	Quality     float32 `yaml:"quality,omitempty" json:"quality,omitempty"`
	Lossless    bool    `yaml:"lossless,omitempty" json:"lossless,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: Output{
			Format: "json",
			Indent: 2,
		},
		Render: Render{
			Format:      "webp",
			Size:        512,
			Padding:     32,
			StrokeWidth: 3,
			Fill:        "#3388ff55",
			Stroke:      "#3388ff",
			Background:  "#ffffff",
			Quality:     85,
		},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Values missing from the file keep their defaults. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerations and numeric ranges.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("output.format must be json or yaml, got %q", c.Output.Format)
	}

	switch c.Render.Format {
	case "webp", "svg":
	default:
		return fmt.Errorf("render.format must be webp or svg, got %q", c.Render.Format)
	}

	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	if c.Render.Size <= 0 {
		return fmt.Errorf("render.size must be positive, got %d", c.Render.Size)
	}
	if c.Render.Padding < 0 || 2*c.Render.Padding >= c.Render.Size {
		return fmt.Errorf("render.padding must be between 0 and half the size, got %d", c.Render.Padding)
	}
	if c.Render.Quality < 0 || c.Render.Quality > 100 {
		return fmt.Errorf("render.quality must be 0-100, got %v", c.Render.Quality)
	}

	return nil
}

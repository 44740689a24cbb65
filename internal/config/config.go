// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds all tpsearch configuration.
type Config struct {
	Source Source `yaml:"source"`
	View   View   `yaml:"view"`
	Log    Log    `yaml:"log"`
}

// Source locates the provider CSV.
type Source struct {
	Path string `yaml:"path"` // Empty selects the embedded sample dataset.
}

// View holds presentation settings.
type View struct {
	PageSize  int   `yaml:"page_size"`
	PageSizes []int `yaml:"page_sizes"`
	EasterEgg bool  `yaml:"easter_egg"`
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // zerolog level name
	File  string `yaml:"file"`  // Used by the interactive viewer; empty selects the default path.
}

// DefaultPageSizes are the page sizes offered when none are configured.
var DefaultPageSizes = []int{25, 50, 100, 500, 1000}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Source: Source{
			Path: "",
		},
		View: View{
			PageSize:  DefaultPageSizes[0],
			PageSizes: slices.Clone(DefaultPageSizes),
			EasterEgg: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if len(c.View.PageSizes) == 0 {
		return errors.New("config: view.page_sizes cannot be empty")
	}
	for _, n := range c.View.PageSizes {
		if n <= 0 {
			return fmt.Errorf("config: view.page_sizes must be positive, got %d", n)
		}
	}
	if !slices.Contains(c.View.PageSizes, c.View.PageSize) {
		return fmt.Errorf("config: view.page_size %d is not one of %v", c.View.PageSize, c.View.PageSizes)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: TPSEARCH_CSV, TPSEARCH_PAGE_SIZE, TPSEARCH_LOG_LEVEL, TPSEARCH_LOG_FILE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("TPSEARCH_CSV"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("TPSEARCH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid TPSEARCH_PAGE_SIZE %q: %w", v, err)
		}
		c.View.PageSize = n
	}
	if v := os.Getenv("TPSEARCH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TPSEARCH_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Source *rawSource `yaml:"source"`
	View   *rawView   `yaml:"view"`
	Log    *rawLog    `yaml:"log"`
}

type rawSource struct {
	Path *string `yaml:"path"`
}

type rawView struct {
	PageSize  *int   `yaml:"page_size"`
	PageSizes *[]int `yaml:"page_sizes"`
	EasterEgg *bool  `yaml:"easter_egg"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Source != nil {
		if layer.Source.Path != nil {
			c.Source.Path = *layer.Source.Path
		}
	}
	if layer.View != nil {
		if layer.View.PageSize != nil {
			c.View.PageSize = *layer.View.PageSize
		}
		if layer.View.PageSizes != nil {
			c.View.PageSizes = slices.Clone(*layer.View.PageSizes)
		}
		if layer.View.EasterEgg != nil {
			c.View.EasterEgg = *layer.View.EasterEgg
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
}

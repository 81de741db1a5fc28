// Package config provides configuration loading and management for
// OntoMetrics.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete OntoMetrics configuration
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OutputConfig configures result rendering
type OutputConfig struct {
	// Format is the report format: text, json, or yaml
	Format string `yaml:"format"`
	// TopN is how many classes the connectivity/importance rankings list
	TopN int `yaml:"top_n"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// DebounceDelay is how long to wait for more changes before re-evaluating
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// MetricsConfig configures the prometheus exposition endpoint
type MetricsConfig struct {
	// Listen is the address for /metrics in watch mode (empty = disabled)
	Listen string `yaml:"listen"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			TopN:   10,
		},
		Watch: WatchConfig{
			DebounceDelay: 500 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Listen: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be text, json, or yaml")
	}
	if c.Output.TopN < 0 {
		return fmt.Errorf("output.top_n must not be negative")
	}
	if c.Watch.DebounceDelay < 0 {
		return fmt.Errorf("watch.debounce_delay must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.TopN != 0 {
		c.Output.TopN = other.Output.TopN
	}
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if other.Metrics.Listen != "" {
		c.Metrics.Listen = other.Metrics.Listen
	}
}

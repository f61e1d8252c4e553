package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the name of the per-directory configuration file
const ProjectFile = ".sjavac.yaml"

// Report formats understood by the batch command
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ProjectConfig represents a .sjavac.yaml file at the root of a source tree
type ProjectConfig struct {
	Version string `yaml:"version"`

	// File patterns, matched against slash separated paths relative to the root
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// Concurrent verifications in batch mode (0 = number of CPUs)
	Workers int `yaml:"workers,omitempty"`

	// Report format: text, json, yaml
	Format string `yaml:"format,omitempty"`

	Watch WatchConfig `yaml:"watch,omitempty"`
}

// WatchConfig holds watch mode settings
type WatchConfig struct {
	// Quiet period before changed files are re-verified
	DebounceMS int `yaml:"debounce_ms,omitempty"`
}

// DefaultProjectConfig returns sensible defaults
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Version: "1.0",
		Include: []string{"**.sjava"},
		Exclude: []string{".git/**", "**/.git/**"},
		Workers: 0,
		Format:  FormatText,
		Watch: WatchConfig{
			DebounceMS: 300,
		},
	}
}

// LoadProjectConfig loads .sjavac.yaml (or .sjavac.yml) from dir, falling
// back to defaults when neither exists
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ProjectFile)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = filepath.Join(dir, ".sjavac.yml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(configPath), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveProjectConfig writes cfg to dir/.sjavac.yaml
func SaveProjectConfig(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, ProjectFile), data, 0644)
}

// Validate checks field values and that every pattern compiles
func (c *ProjectConfig) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown report format %q", c.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	_, err := c.Matcher()
	return err
}

// Merge applies overrides from another config (e.g., CLI flags)
func (c *ProjectConfig) Merge(other *ProjectConfig) {
	if other == nil {
		return
	}

	if len(other.Include) > 0 {
		c.Include = other.Include
	}

	if len(other.Exclude) > 0 {
		c.Exclude = other.Exclude
	}

	if other.Workers != 0 {
		c.Workers = other.Workers
	}

	if other.Format != "" {
		c.Format = other.Format
	}

	if other.Watch.DebounceMS != 0 {
		c.Watch.DebounceMS = other.Watch.DebounceMS
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the configuration directory under the home directory.
	DefaultBaseDir = ".stackstr"
	// DefaultConfigFile is the configuration filename.
	DefaultConfigFile = "config.yaml"

	// DefaultCapacity is used when neither a flag nor the config sets one.
	DefaultCapacity = 63
	// MaxCapacity bounds the capacities the tool accepts.
	MaxCapacity = 1 << 20
)

// Config holds the defaults of the stackstr tool.
type Config struct {
	// Capacity is the default string capacity in bytes.
	Capacity int `yaml:"capacity,omitempty"`

	// Output is the default output format.
	Output OutputFormat `yaml:"output,omitempty"`

	// Color enables styled placeholders in escaped output.
	Color bool `yaml:"color,omitempty"`

	path string
}

// LoadConfig reads the configuration at path, or at the default location
// when path is empty. A missing file yields the defaults without creating
// anything on disk.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, DefaultBaseDir, DefaultConfigFile)
	}

	cfg := &Config{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if c.Capacity < 0 || c.Capacity > MaxCapacity {
		return fmt.Errorf("capacity %d out of range [0, %d]", c.Capacity, MaxCapacity)
	}
	if c.Output != "" && !c.Output.IsValid() {
		return fmt.Errorf("unsupported output format: %s", c.Output)
	}
	return nil
}

// Save writes the configuration back to its file, creating the directory
// if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// EffectiveCapacity returns the configured capacity, or DefaultCapacity
// when none is set.
func (c *Config) EffectiveCapacity() int {
	if c.Capacity == 0 {
		return DefaultCapacity
	}
	return c.Capacity
}

// Set updates one setting from its string form.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "capacity":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("capacity: %w", err)
		}
		next.Capacity = n
	case "output":
		next.Output = OutputFormat(value)
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		next.Color = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

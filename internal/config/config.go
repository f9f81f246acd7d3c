package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the optional logicc.yaml project file.
// Command-line flags override every field.
type Config struct {
	// ShortCircuit selects short-circuit code generation (-s).
	ShortCircuit bool `yaml:"short_circuit"`

	// Optimize selects the optimized mode (-o). It implies ShortCircuit.
	Optimize bool `yaml:"optimize"`

	// OutputDir is where the default <input>.s is written. Relative paths
	// are resolved against the directory holding the config file.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Cache is the path of the SQLite build cache. Empty disables caching.
	// Relative paths are resolved like OutputDir.
	Cache string `yaml:"cache,omitempty"`

	// Color is one of auto, always, never. Defaults to auto.
	Color string `yaml:"color,omitempty"`
}

// LoadConfig reads and parses a logicc.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses logicc.yaml content from bytes.
// The path argument is used for error messages and to resolve relative paths.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults(filepath.Dir(path))
	return &cfg, nil
}

// FindConfig looks for logicc.yaml (or logicc.yml) in dir.
// Returns an empty path and nil error if there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for _, name := range []string{ConfigFileName, "logicc.yml"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func (c *Config) validate(path string) error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be one of auto, always, never (got %q)", path, c.Color)
	}
	return nil
}

func (c *Config) setDefaults(configDir string) {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Optimize {
		c.ShortCircuit = true
	}
	if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(configDir, c.OutputDir)
	}
	if c.Cache != "" && !filepath.IsAbs(c.Cache) {
		c.Cache = filepath.Join(configDir, c.Cache)
	}
}

// Default returns the configuration used when there is no project file.
func Default() *Config {
	return &Config{Color: ColorAuto}
}
